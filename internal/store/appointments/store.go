// Package appointments holds the confirmed bookings and the occupancy
// predicate that gates slot selection.
package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agendei-app/agendei-service/internal/domain"
	"github.com/agendei-app/agendei-service/internal/infra/storage"
)

// NewAppointment is the data needed to confirm a booking. ID and CreatedAt
// are stamped by the store.
type NewAppointment struct {
	DateISO       string
	Hour          int
	Items         []domain.CartLine
	Total         float64
	CustomerName  string
	CustomerPhone string
}

// Store keeps the appointment list in memory and mirrors it to the storage
// adapter. Within one process the mutex makes check-then-add atomic; two
// processes sharing a storage backend can still double-book a slot, so the
// at-most-one-per-slot invariant is advisory across writers.
type Store struct {
	mu           sync.RWMutex
	storage      Storage
	logger       Logger
	appointments []domain.Appointment

	now   func() time.Time
	newID func() string
}

// New returns an empty appointment store. Call Load to pick up the
// persisted record.
func New(st Storage, logger Logger) *Store {
	return &Store{
		storage: st,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Load reads the persisted appointment list. A malformed payload is logged
// and skipped, leaving the prior in-memory state untouched.
func (s *Store) Load(ctx context.Context) {
	raw, err := s.storage.Read(ctx, storage.KeyAppointments)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("appointments: load failed, keeping current state: %v", err)
		}
		return
	}

	var parsed []domain.Appointment
	if err := json.Unmarshal(raw, &parsed); err != nil {
		s.logger.Warn("appointments: malformed record, keeping current state: %v", err)
		return
	}

	s.mu.Lock()
	s.appointments = parsed
	s.mu.Unlock()
}

// IsOccupied reports whether any stored appointment holds the slot. Exact
// string/integer equality; no timezone normalization beyond what produced
// the ISO date.
func (s *Store) IsOccupied(dateISO string, hour int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOccupiedLocked(dateISO, hour)
}

func (s *Store) isOccupiedLocked(dateISO string, hour int) bool {
	for i := range s.appointments {
		if s.appointments[i].Occupies(dateISO, hour) {
			return true
		}
	}
	return false
}

// Add re-checks occupancy for the slot and, when free, stamps an ID and
// creation time, appends the appointment and persists the full list. On a
// conflict it returns ErrSlotOccupied and mutates nothing.
func (s *Store) Add(ctx context.Context, data NewAppointment) (*domain.Appointment, error) {
	s.mu.Lock()
	if s.isOccupiedLocked(data.DateISO, data.Hour) {
		s.mu.Unlock()
		return nil, ErrSlotOccupied
	}

	appt := domain.Appointment{
		ID:            s.newID(),
		DateISO:       data.DateISO,
		Hour:          data.Hour,
		Items:         append([]domain.CartLine(nil), data.Items...),
		Total:         data.Total,
		CustomerName:  data.CustomerName,
		CustomerPhone: data.CustomerPhone,
		CreatedAt:     s.now(),
	}
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()

	s.persist(ctx)
	return &appt, nil
}

// ClearAll empties the list and persists the empty record immediately.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.appointments = nil
	s.mu.Unlock()

	s.persist(ctx)
}

// List returns a snapshot copy of all appointments.
func (s *Store) List() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Appointment(nil), s.appointments...)
}

// Count returns the number of stored appointments.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

func (s *Store) persist(ctx context.Context) {
	s.mu.RLock()
	list := s.appointments
	if list == nil {
		list = []domain.Appointment{}
	}
	raw, err := json.Marshal(list)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("appointments: marshal record: %v", err)
		return
	}
	if err := s.storage.Write(ctx, storage.KeyAppointments, raw); err != nil {
		s.logger.Warn("appointments: persist failed, in-memory state kept: %v", err)
	}
}
