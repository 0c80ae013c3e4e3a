package confirm_booking

import (
	"time"

	"github.com/agendei-app/agendei-service/internal/domain"
)

// Request is a booking submission for the session's current cart.
type Request struct {
	SessionID     string
	Date          time.Time
	Hour          int
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// Response carries the committed appointment and the WhatsApp handoff link
// the client should open. The link is fire-and-forget; nothing is read back.
type Response struct {
	Appointment  domain.Appointment
	WhatsAppLink string
}
