// Package kanban wires the local kanban data stores over a shared
// key-value substrate. Consumers resolve the active user through the
// session store, then read and write that user's board through the board
// store; every write pulses the sync signal so sibling contexts re-read
// state.
package kanban

import (
	"fmt"
	"time"

	"localkanban/auth"
	"localkanban/config"
	"localkanban/notify"
	"localkanban/storage"
	"localkanban/store"
)

// App bundles the stores over one storage substrate and one notify hub.
type App struct {
	Users    *store.UserStore
	Sessions *store.SessionStore
	Boards   *store.BoardStore
	Settings *store.SettingsStore
	Hub      *notify.Hub

	sqlite *storage.SQLiteAdapter
}

// Init opens the sqlite substrate at cfg.StoragePath and wires the stores.
func Init(cfg *config.Config) (*App, error) {
	adapter, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	app := InitWithAdapter(cfg, adapter)
	app.sqlite = adapter
	return app, nil
}

// InitWithAdapter wires the stores over any substrate. Tests inject
// storage.NewMemoryAdapter().
func InitWithAdapter(cfg *config.Config, adapter storage.Adapter) *App {
	hub := notify.NewHub()
	st := storage.NewStore(adapter, hub)
	tokens := auth.NewService(cfg.TokenSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	boards := store.NewBoardStore(st)
	return &App{
		Users:    store.NewUserStore(st, boards),
		Sessions: store.NewSessionStore(st, tokens),
		Boards:   boards,
		Settings: store.NewSettingsStore(st),
		Hub:      hub,
	}
}

// Close releases the underlying database when Init opened one.
func (a *App) Close() error {
	if a.sqlite != nil {
		return a.sqlite.Close()
	}
	return nil
}
