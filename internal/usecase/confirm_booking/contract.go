package confirm_booking

import (
	"context"
	"time"

	"github.com/agendei-app/agendei-service/internal/domain"
	"github.com/agendei-app/agendei-service/internal/store/appointments"
	"github.com/agendei-app/agendei-service/internal/store/profile"
)

// CartStore is the cart interface the booking flow consumes.
type CartStore interface {
	Get(sessionID string) []domain.CartLine
	Total(sessionID string) float64
	Clear(sessionID string)
}

// AppointmentStore commits bookings and answers occupancy.
type AppointmentStore interface {
	IsOccupied(dateISO string, hour int) bool
	Add(ctx context.Context, data appointments.NewAppointment) (*domain.Appointment, error)
}

// SettingsProvider exposes the current business configuration.
type SettingsProvider interface {
	Get() domain.Settings
}

// ProfileStore persists the customer's contact details for prefill.
type ProfileStore interface {
	Update(ctx context.Context, sessionID string, patch profile.Patch) domain.Profile
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
