// Package file persists records as one JSON file per key under a data
// directory. Writes go through a temp file plus rename so a crashed write
// never leaves a half-written record behind.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agendei-app/agendei-service/internal/infra/storage"
)

// Store is a file-backed storage adapter.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a file store.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrWriteRecord, err)
	}
	return &Store{dir: dir}, nil
}

// Read returns the record stored under key, or storage.ErrNotFound.
func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read %q: %v", ErrReadRecord, key, err)
	}
	return data, nil
}

// Write replaces the record under key atomically.
func (s *Store) Write(_ context.Context, key string, data []byte) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: Write %q: %v", ErrWriteRecord, key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: Write %q: %v", ErrWriteRecord, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Write %q: %v", ErrWriteRecord, key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Write %q: %v", ErrWriteRecord, key, err)
	}
	return nil
}

// Delete removes the record under key. Deleting a missing record is a no-op.
func (s *Store) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: Delete %q: %v", ErrDeleteRecord, key, err)
	}
	return nil
}

// path maps a record key to a file name. Path separators in keys are
// flattened so a key can never escape the data directory.
func (s *Store) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}
