package domain

import "time"

// Appointment is a confirmed booking. Items are a snapshot of the cart at
// confirmation time, not live catalog references. Appointments are immutable
// once created; the only mutation the store supports is wholesale deletion.
type Appointment struct {
	ID            string     `json:"id"`
	DateISO       string     `json:"dateIso"` // YYYY-MM-DD
	Hour          int        `json:"hour"`    // 0-23
	Items         []CartLine `json:"items"`
	Total         float64    `json:"total"`
	CustomerName  string     `json:"customerName,omitempty"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Occupies reports whether this appointment holds the given slot.
func (a *Appointment) Occupies(dateISO string, hour int) bool {
	return a.DateISO == dateISO && a.Hour == hour
}
