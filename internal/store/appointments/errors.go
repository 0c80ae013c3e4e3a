package appointments

import "errors"

var (
	// ErrSlotOccupied is returned when an appointment already holds the
	// requested (date, hour) slot.
	ErrSlotOccupied = errors.New("appointments: slot already occupied")
)
