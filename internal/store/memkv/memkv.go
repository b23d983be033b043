// Package memkv is an in-memory key-value backend. It backs tests and
// the default zero-setup configuration; nothing survives a restart.
package memkv

import (
	"context"
	"sync"
)

type Store struct {
	mu    sync.Mutex
	items map[string]string
}

func New() *Store {
	return &Store{items: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]string)
	return nil
}
