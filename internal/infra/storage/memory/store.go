// Package memory is an in-memory storage adapter for tests.
package memory

import (
	"context"
	"sync"

	"github.com/agendei-app/agendei-service/internal/infra/storage"
)

// Store keeps records in a map. The zero value is not usable; call New.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte

	// WriteErr and ReadErr, when set, are returned by every Write/Read.
	// Used to exercise the swallowed-persistence-failure paths.
	WriteErr error
	ReadErr  error
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

// Seed pre-loads a record, bypassing error injection.
func (s *Store) Seed(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), data...)
}

func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (s *Store) Write(_ context.Context, key string, data []byte) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = append([]byte(nil), data...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
