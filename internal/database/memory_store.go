package database

import (
	"context"
	"sync"
)

// MemoryStore is a process-local KeyValueStore.
// Values are copied on the way in and out so callers can't alias them.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// Compile-time verification that *MemoryStore implements KeyValueStore
var _ KeyValueStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.slots[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
