package postgres

import "errors"

var (
	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("postgres.storage: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("postgres.storage: failed to execute query")

	// ErrScanRow is returned when the query result cannot be scanned.
	ErrScanRow = errors.New("postgres.storage: failed to scan row")
)
