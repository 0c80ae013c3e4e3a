package get_agenda

import "errors"

var (
	// ErrDateOutsideWindow is returned when the requested date falls
	// outside the visible scheduling window.
	ErrDateOutsideWindow = errors.New("get_agenda: date outside scheduling window")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("get_agenda: invalid input data")
)
