package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localkanban/store"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	// Arrange
	env := newTestEnv()
	ctx := context.Background()

	// Act
	registered, err := env.users.Register(ctx, "alice", "a@x.com", "pw")
	require.NoError(t, err)

	authenticated, err := env.users.Authenticate(ctx, "alice", "pw")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, authenticated.ID)
	assert.Equal(t, "alice", authenticated.Username)
	assert.Equal(t, "a@x.com", authenticated.Email)
	assert.NotEqual(t, "pw", authenticated.PasswordHash)
	assert.NotZero(t, authenticated.CreatedAt)
}

func TestRegister_Duplicate(t *testing.T) {
	// Arrange
	env := newTestEnv()
	ctx := context.Background()
	first, err := env.users.Register(ctx, "alice", "a@x.com", "pw")
	require.NoError(t, err)

	// Act
	_, err = env.users.Register(ctx, "alice", "other@x.com", "different")

	// Assert: the second attempt fails and the first registration is
	// unaffected.
	assert.ErrorIs(t, err, store.ErrDuplicateUser)

	user, err := env.users.Authenticate(ctx, "alice", "pw")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	// Arrange
	env := newTestEnv()
	ctx := context.Background()
	_, err := env.users.Register(ctx, "alice", "a@x.com", "pw")
	require.NoError(t, err)

	// Act
	_, err = env.users.Authenticate(ctx, "alice", "wrong")

	// Assert
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	// Arrange
	env := newTestEnv()

	// Act
	_, err := env.users.Authenticate(context.Background(), "nobody", "pw")

	// Assert
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestRegister_SeedsBoard(t *testing.T) {
	// Arrange
	env := newTestEnv()
	ctx := context.Background()

	// Act
	user, err := env.users.Register(ctx, "alice", "a@x.com", "pw")
	require.NoError(t, err)

	// Assert
	board, err := env.boards.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, "To Do", board.Columns[0].Title)
	assert.Equal(t, "In Progress", board.Columns[1].Title)
	assert.Equal(t, "Done", board.Columns[2].Title)
	assert.Empty(t, board.Tasks)
}

func TestRegister_InvalidInput(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@x.com", "pw"},
		{"empty email", "alice", "", "pw"},
		{"empty password", "alice", "a@x.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.users.Register(ctx, tt.username, tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestRegister_AcceptsUnconventionalInput(t *testing.T) {
	// Arrange: only presence is validated, so short usernames and odd
	// email strings register fine.
	env := newTestEnv()
	ctx := context.Background()

	// Act
	user, err := env.users.Register(ctx, "ab", "not-an-email", "p")

	// Assert
	require.NoError(t, err)
	_, err = env.users.Authenticate(ctx, "ab", "p")
	assert.NoError(t, err)
	assert.Equal(t, "not-an-email", user.Email)
}
