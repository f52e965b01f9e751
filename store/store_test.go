package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"localkanban/auth"
	"localkanban/notify"
	"localkanban/storage"
	"localkanban/store"
)

type testEnv struct {
	adapter  *storage.MemoryAdapter
	users    *store.UserStore
	sessions *store.SessionStore
	boards   *store.BoardStore
	settings *store.SettingsStore
}

func newTestEnv() *testEnv {
	adapter := storage.NewMemoryAdapter()
	st := storage.NewStore(adapter, notify.NewHub())
	tokens := auth.NewService("test-secret-key", time.Hour)

	boards := store.NewBoardStore(st)
	return &testEnv{
		adapter:  adapter,
		users:    store.NewUserStore(st, boards),
		sessions: store.NewSessionStore(st, tokens),
		boards:   boards,
		settings: store.NewSettingsStore(st),
	}
}

// mustFirstColumnID resolves the lowest-order column of a user's board.
func mustFirstColumnID(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	columns, err := env.boards.Columns(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, columns)
	return columns[0].ID
}
