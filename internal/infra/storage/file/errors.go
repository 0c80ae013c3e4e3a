package file

import "errors"

var (
	// ErrReadRecord is returned when a record file cannot be read.
	ErrReadRecord = errors.New("file.storage: failed to read record")

	// ErrWriteRecord is returned when a record file cannot be written.
	ErrWriteRecord = errors.New("file.storage: failed to write record")

	// ErrDeleteRecord is returned when a record file cannot be removed.
	ErrDeleteRecord = errors.New("file.storage: failed to delete record")
)
