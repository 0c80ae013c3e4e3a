package confirm_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agendei-app/agendei-service/pkg/whatsapp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest checks the request shape and the customer contact
// details: non-empty name, syntactic email, phone with 10-15 digits after
// stripping non-digits.
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Hour < 0 || req.Hour > 23 {
		return fmt.Errorf("%w: hour must be between 0 and 23", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return ErrInvalidName
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.CustomerEmail)) {
		return ErrInvalidEmail
	}
	if !whatsapp.IsValidNumber(req.CustomerPhone) {
		return ErrInvalidPhone
	}
	return nil
}
