package store

import (
	"context"

	"localkanban/model"
	"localkanban/storage"
)

// SettingsStore holds the global, session-independent preferences.
type SettingsStore struct {
	storage *storage.Store
}

func NewSettingsStore(st *storage.Store) *SettingsStore {
	return &SettingsStore{storage: st}
}

// Theme returns the persisted theme, defaulting to light when unset or
// unrecognized.
func (s *SettingsStore) Theme(ctx context.Context) (model.Theme, error) {
	theme := model.ThemeLight
	if err := s.storage.Read(ctx, storage.KeyTheme, &theme); err != nil {
		return model.ThemeLight, err
	}
	if theme != model.ThemeLight && theme != model.ThemeDark {
		theme = model.ThemeLight
	}
	return theme, nil
}

func (s *SettingsStore) SetTheme(ctx context.Context, theme model.Theme) error {
	return s.storage.Write(ctx, storage.KeyTheme, theme)
}
