package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteAdapter persists the key-value substrate in a single sqlite table.
// It is the durable stand-in for per-origin browser storage.
type SQLiteAdapter struct {
	db *sql.DB
}

var _ Adapter = (*SQLiteAdapter)(nil)

// OpenSQLite opens (creating if needed) the database at path and ensures
// the kv table exists.
func OpenSQLite(path string) (*SQLiteAdapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLiteAdapter{db: db}, nil
}

// NewSQLiteAdapter wraps an existing connection whose kv table is already
// in place.
func NewSQLiteAdapter(db *sql.DB) *SQLiteAdapter {
	return &SQLiteAdapter{db: db}
}

func (a *SQLiteAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	row := a.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key)

	var value string
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query key %q: %w", key, err)
	}
	return value, true, nil
}

func (a *SQLiteAdapter) Set(ctx context.Context, key, value string) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert key %q: %w", key, err)
	}
	return nil
}

func (a *SQLiteAdapter) Delete(ctx context.Context, key string) error {
	_, err := a.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (a *SQLiteAdapter) Close() error {
	return a.db.Close()
}
