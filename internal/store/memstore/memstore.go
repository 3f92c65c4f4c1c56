package memstore

import (
	"context"
	"sync"
)

// Store is an in-process key-value store. Default backend for dev and
// tests; nothing survives a restart.
type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func New() *Store {
	return &Store{
		m: make(map[string][]byte),
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	// copy so callers cannot mutate the stored blob
	out := make([]byte, len(v))
	copy(out, v)

	return out, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()

	return nil
}
