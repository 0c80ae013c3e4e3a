package domain

import "time"

// SlotReason explains why a slot is unavailable.
type SlotReason string

const (
	ReasonOccupied SlotReason = "occupied" // an appointment already holds the slot
	ReasonBlocked  SlotReason = "blocked"  // disabled by the admin
	ReasonPast     SlotReason = "past"     // the hour already passed today
	ReasonCutoff   SlotReason = "cutoff"   // current hour expired its grace window
)

// SlotCheck carries everything the availability evaluator needs to decide
// whether one (date, hour) slot is selectable.
type SlotCheck struct {
	Now            time.Time
	CutoffMin      int    // grace minutes for today's current hour slot
	DateISO        string // target date, YYYY-MM-DD
	Hour           int    // target hour, 0-23
	Occupied       bool
	BlockedByAdmin bool
}

// EvaluateSlot decides availability with a fixed first-match-wins order:
// occupancy and admin blocks are absolute and win over any time-based
// leniency; future days are never time-gated. Returns the blocking reason,
// or "" when the slot is selectable.
func EvaluateSlot(c SlotCheck) SlotReason {
	if c.Occupied {
		return ReasonOccupied
	}
	if c.BlockedByAdmin {
		return ReasonBlocked
	}
	if c.DateISO != c.Now.Format(DateFormat) {
		return ""
	}
	if c.Hour < c.Now.Hour() {
		return ReasonPast
	}
	if c.Hour == c.Now.Hour() && c.Now.Minute() >= c.CutoffMin {
		return ReasonCutoff
	}
	return ""
}

// IsSlotDisabled reports whether the slot is unavailable for selection.
func IsSlotDisabled(c SlotCheck) bool {
	return EvaluateSlot(c) != ""
}

// HourlySlots generates the hour-granularity slots of a working day,
// inclusive on both ends (e.g. 9..18). Empty when end < start.
func HourlySlots(startHour, endHour int) []int {
	if endHour < startHour {
		return []int{}
	}
	hours := make([]int, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// NextDays returns count consecutive days starting today, truncated to
// midnight in now's location.
func NextDays(now time.Time, count int) []time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, today.AddDate(0, 0, i))
	}
	return days
}
