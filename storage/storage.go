package storage

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"

	"localkanban/notify"
)

// Persisted keys. The whole external interface of the module is these five
// string keys and their JSON values.
const (
	KeyUsers    = "kanban_users"
	KeySessions = "kanban_sessions"
	KeyBoards   = "kanban_boards"
	KeySync     = "kanban_sync"
	KeyTheme    = "kanban_theme"
)

// Adapter is the key-value substrate capability injected into the store.
// Set overwrites atomically per key; concurrent writers race with last
// write wins.
type Adapter interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store fronts an Adapter with JSON (de)serialization and the change
// notification pulse. Every successful Write touches the sync key and
// broadcasts on the hub so sibling contexts re-read state.
type Store struct {
	adapter Adapter
	hub     *notify.Hub
}

func NewStore(adapter Adapter, hub *notify.Hub) *Store {
	return &Store{adapter: adapter, hub: hub}
}

// Read decodes the value stored under key into dst. A missing key or
// malformed stored value leaves dst untouched, so callers preload dst with
// their default; only substrate failures are returned.
func (s *Store) Read(ctx context.Context, key string, dst any) error {
	raw, ok, err := s.adapter.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	// Decode into a fresh value and assign only on success: Unmarshal
	// populates dst field by field before reporting a type mismatch, and a
	// half-decoded record must never replace the caller's default. Corrupt
	// data is treated as missing, never surfaced.
	fresh := reflect.New(reflect.TypeOf(dst).Elem())
	if err := json.Unmarshal([]byte(raw), fresh.Interface()); err != nil {
		return nil
	}
	reflect.ValueOf(dst).Elem().Set(fresh.Elem())
	return nil
}

// Write encodes value under key, then pulses the sync key. The primary
// write is not undone when the pulse fails; the returned error only
// reports that siblings may not have been notified.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.adapter.Set(ctx, key, string(raw)); err != nil {
		return err
	}
	if err := s.pulse(ctx); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Broadcast()
	}
	return nil
}

// pulse touches the sync key three times: set, delete, set. Change-event
// listeners fire only when a key's value actually changes; the delete in
// the middle guarantees two observable transitions even when the new
// timestamp equals the previous one.
func (s *Store) pulse(ctx context.Context) error {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	var errs *multierror.Error
	errs = multierror.Append(errs, s.adapter.Set(ctx, KeySync, now))
	errs = multierror.Append(errs, s.adapter.Delete(ctx, KeySync))
	errs = multierror.Append(errs, s.adapter.Set(ctx, KeySync, now))
	return errs.ErrorOrNil()
}
