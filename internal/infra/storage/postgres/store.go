// Package postgres keeps the JSON records in a single key/value table.
// The blob-per-store model is unchanged; Postgres only makes the shelf
// durable and shareable between instances.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/agendei-app/agendei-service/internal/infra/storage"
)

// builder is a statement builder preconfigured for PostgreSQL placeholders.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DBExecutor is the subset of *sql.DB the store needs.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Store is a Postgres-backed storage adapter over the records table.
type Store struct {
	db DBExecutor
}

// New returns a Postgres store using the given executor.
func New(db DBExecutor) *Store {
	return &Store{db: db}
}

// Read returns the record stored under key, or storage.ErrNotFound.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	query, args, err := builder.Select("value").
		From("records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Read - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read - scan record: %v", ErrScanRow, err)
	}
	return value, nil
}

// Write upserts the record under key.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	query, args, err := builder.Insert("records").
		Columns("key", "value").
		Values(key, data).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Write - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Write - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete removes the record under key. Deleting a missing record is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := builder.Delete("records").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}
