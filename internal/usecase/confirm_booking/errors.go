package confirm_booking

import "errors"

var (
	// ErrInvalidName is returned when the customer name is empty.
	ErrInvalidName = errors.New("confirm_booking: customer name is required")

	// ErrInvalidEmail is returned when the customer email is missing or
	// syntactically invalid.
	ErrInvalidEmail = errors.New("confirm_booking: invalid customer email")

	// ErrInvalidPhone is returned when the customer phone has fewer than 10
	// or more than 15 digits after stripping non-digits.
	ErrInvalidPhone = errors.New("confirm_booking: invalid customer phone")

	// ErrEmptyCart is returned when the session has no services selected.
	ErrEmptyCart = errors.New("confirm_booking: cart is empty")

	// ErrSlotOccupied is returned when the slot was taken between selection
	// and submission.
	ErrSlotOccupied = errors.New("confirm_booking: slot already occupied")

	// ErrSlotUnavailable is returned when the slot is blocked by the admin
	// or no longer bookable today (past hour or expired cutoff).
	ErrSlotUnavailable = errors.New("confirm_booking: slot not available")

	// ErrDateOutsideWindow is returned when the date falls outside the
	// visible scheduling window.
	ErrDateOutsideWindow = errors.New("confirm_booking: date outside scheduling window")

	// ErrPhoneNotConfigured is returned when the salon's WhatsApp number is
	// missing or invalid in the settings.
	ErrPhoneNotConfigured = errors.New("confirm_booking: business whatsapp number not configured")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")
)
