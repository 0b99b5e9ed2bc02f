package kv

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore is an in-process Store for tests and single-shot tools.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string

	// FailSets, when true, makes every Set return an error. Tests use it
	// to exercise the best-effort persistence policy.
	FailSets bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]string{}}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if s.FailSets {
		return errSetFailed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

var errSetFailed = errors.New("kv: set failed")
