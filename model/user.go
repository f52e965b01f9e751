package model

// User is an identity record, keyed by username in the identity map.
// Users are never mutated or deleted once registered.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    int64  `json:"createdAt"`
}
