package get_agenda

import (
	"time"

	"github.com/agendei-app/agendei-service/internal/domain"
)

// SettingsProvider exposes the current business configuration.
type SettingsProvider interface {
	Get() domain.Settings
}

// OccupancyChecker answers whether a slot already has an appointment.
type OccupancyChecker interface {
	IsOccupied(dateISO string, hour int) bool
}

// TimeProvider returns the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
