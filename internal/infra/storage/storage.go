// Package storage defines the persistence adapter used by every store.
// Each logical store owns one opaque JSON record under a fixed key; the
// adapter never inspects the payload.
package storage

import (
	"context"
	"errors"
)

// Record keys used by the stores.
const (
	KeySettings     = "agendei_settings"
	KeyAppointments = "agendei_appointments"
	KeyProfilePrefix = "agendei_profile:"
)

// ErrNotFound is returned when no record exists under the requested key.
var ErrNotFound = errors.New("storage: record not found")

// Store reads and writes opaque records by key.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
