package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"localkanban/auth"
	"localkanban/model"
	"localkanban/storage"
)

var validate = validator.New()

// RegisterInput carries the registration form fields. Only presence is
// validated; any non-empty username, email and password are accepted.
type RegisterInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// UserStore owns the identity map. Users are write-once: there is no
// update or account-deletion path.
type UserStore struct {
	mu      sync.Mutex
	storage *storage.Store
	boards  *BoardStore
}

func NewUserStore(st *storage.Store, boards *BoardStore) *UserStore {
	return &UserStore{storage: st, boards: boards}
}

// Register creates a new user and seeds their board with the default
// columns. Fails with ErrDuplicateUser when the username is taken.
func (s *UserStore) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	input := RegisterInput{Username: username, Email: email, Password: password}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid registration input: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := map[string]model.User{}
	if err := s.storage.Read(ctx, storage.KeyUsers, &users); err != nil {
		return nil, err
	}
	if _, exists := users[username]; exists {
		return nil, ErrDuplicateUser
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UnixMilli(),
	}
	users[username] = user

	if err := s.storage.Write(ctx, storage.KeyUsers, users); err != nil {
		return nil, err
	}
	if _, err := s.boards.GetOrCreate(ctx, user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a username/password pair and returns the matching
// user. A missing user and a bad password both come back as
// ErrInvalidCredentials.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := map[string]model.User{}
	if err := s.storage.Read(ctx, storage.KeyUsers, &users); err != nil {
		return nil, err
	}

	user, ok := users[username]
	if !ok || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
