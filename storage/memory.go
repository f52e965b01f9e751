package storage

import (
	"context"
	"sync"
)

// MemoryAdapter is a map-backed substrate. It backs tests and any consumer
// that does not need persistence across restarts.
type MemoryAdapter struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ Adapter = (*MemoryAdapter)(nil)

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{data: make(map[string]string)}
}

func (a *MemoryAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	value, ok := a.data[key]
	return value, ok, nil
}

func (a *MemoryAdapter) Set(ctx context.Context, key, value string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data[key] = value
	return nil
}

func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.data, key)
	return nil
}
