package store

import "errors"

// Errors surfaced to callers. Updating, renaming or deleting a record that
// is already gone is a silent no-op, not an error: a sibling context may
// have removed it first.
var (
	// ErrDuplicateUser is returned when registering an existing username
	ErrDuplicateUser = errors.New("username already exists")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
)
