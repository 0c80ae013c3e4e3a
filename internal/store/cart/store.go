// Package cart keeps per-session shopping carts in memory only. Carts are
// deliberately not persisted: a process restart loses them, mirroring the
// transient nature of an unconfirmed booking.
package cart

import (
	"sync"

	"github.com/agendei-app/agendei-service/internal/domain"
)

// Store maps session IDs to cart lines. All operations are total functions:
// unknown sessions read as empty carts and unknown line IDs are no-ops.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartLine
}

// New returns an empty cart store.
func New() *Store {
	return &Store{carts: make(map[string][]domain.CartLine)}
}

// Add puts one unit of the item into the session's cart. If a line with the
// same ID exists its quantity is incremented, otherwise a new line with
// quantity 1 is appended.
func (s *Store) Add(sessionID string, item domain.ServiceItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Qty++
			return
		}
	}
	s.carts[sessionID] = append(lines, domain.CartLine{ServiceItem: item, Qty: 1})
}

// Increase bumps a line's quantity by one.
func (s *Store) Increase(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ID == itemID {
			lines[i].Qty++
			return
		}
	}
}

// Decrease lowers a line's quantity by one and removes the line entirely
// when the quantity reaches zero. A line never exists with qty <= 0.
func (s *Store) Decrease(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ID != itemID {
			continue
		}
		lines[i].Qty--
		if lines[i].Qty <= 0 {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
		}
		return
	}
}

// Remove deletes a line outright regardless of quantity.
func (s *Store) Remove(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ID == itemID {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			return
		}
	}
}

// Clear empties the session's cart.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Get returns a copy of the session's cart lines.
func (s *Store) Get(sessionID string) []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartLine(nil), s.carts[sessionID]...)
}

// Total returns the sum of price*qty over the session's cart.
func (s *Store) Total(sessionID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartTotal(s.carts[sessionID])
}
