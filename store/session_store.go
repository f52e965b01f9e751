package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"localkanban/auth"
	"localkanban/model"
	"localkanban/storage"
)

// SessionStore owns the ordered list of active sessions. Deleting sessions
// never cascades: a user with zero sessions keeps their board.
type SessionStore struct {
	mu      sync.Mutex
	storage *storage.Store
	tokens  *auth.Service
}

func NewSessionStore(st *storage.Store, tokens *auth.Service) *SessionStore {
	return &SessionStore{storage: st, tokens: tokens}
}

// Create appends a new session for the given user. LastActivity is set
// once here and never refreshed afterwards.
func (s *SessionStore) Create(ctx context.Context, userID, username string) (*model.Session, error) {
	token, err := s.tokens.Token(userID, username)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := []model.Session{}
	if err := s.storage.Read(ctx, storage.KeySessions, &sessions); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	session := model.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		Username:     username,
		Token:        token,
		CreatedAt:    now,
		LastActivity: now,
	}
	sessions = append(sessions, session)

	if err := s.storage.Write(ctx, storage.KeySessions, sessions); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListAll returns every session in insertion order.
func (s *SessionStore) ListAll(ctx context.Context) ([]model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := []model.Session{}
	if err := s.storage.Read(ctx, storage.KeySessions, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindByID returns nil, nil when the session is absent. Callers treat that
// as "already logged out elsewhere" and clear their local view state.
func (s *SessionStore) FindByID(ctx context.Context, id string) (*model.Session, error) {
	sessions, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].ID == id {
			return &sessions[i], nil
		}
	}
	return nil, nil
}

// Delete removes one session by id; removing an unknown id is a no-op.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := []model.Session{}
	if err := s.storage.Read(ctx, storage.KeySessions, &sessions); err != nil {
		return err
	}

	remaining := sessions[:0]
	for _, session := range sessions {
		if session.ID != id {
			remaining = append(remaining, session)
		}
	}
	return s.storage.Write(ctx, storage.KeySessions, remaining)
}

// DeleteAll logs out every session at once.
func (s *SessionStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.Write(ctx, storage.KeySessions, []model.Session{})
}
