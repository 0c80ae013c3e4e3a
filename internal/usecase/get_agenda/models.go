package get_agenda

import (
	"time"

	"github.com/agendei-app/agendei-service/internal/domain"
)

// Request asks for the agenda of one date. A nil date means today.
type Request struct {
	Date *time.Time
}

// Day is one entry of the visible scheduling window.
type Day struct {
	DateISO string // YYYY-MM-DD
	Blocked bool   // whole date disabled by the admin
}

// Slot is one bookable hour of the requested date.
type Slot struct {
	Hour     int
	Disabled bool
	Reason   domain.SlotReason // empty when selectable
}

// Response carries the day window and the hour slots of the target date.
type Response struct {
	DateISO string
	Days    []Day
	Slots   []Slot
}
