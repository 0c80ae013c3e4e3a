package confirm_booking

import (
	"github.com/agendei-app/agendei-service/internal/domain"
	confirmBooking "github.com/agendei-app/agendei-service/internal/usecase/confirm_booking"
)

// BookingRequest is the HTTP payload for a booking submission.
type BookingRequest struct {
	Date          string `json:"date"`
	Hour          int    `json:"hour"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

// ItemResponse is one booked service line.
type ItemResponse struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// BookingResponse carries the committed appointment and the WhatsApp link
// the client should open to hand the conversation to the salon.
type BookingResponse struct {
	ID           string         `json:"id"`
	Date         string         `json:"date"`
	Hour         int            `json:"hour"`
	Items        []ItemResponse `json:"items"`
	Total        float64        `json:"total"`
	WhatsAppLink string         `json:"whatsappLink"`
}

// FromUseCaseResponse converts the use case response to the HTTP model.
func FromUseCaseResponse(resp *confirmBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:           resp.Appointment.ID,
		Date:         resp.Appointment.DateISO,
		Hour:         resp.Appointment.Hour,
		Items:        make([]ItemResponse, 0, len(resp.Appointment.Items)),
		Total:        resp.Appointment.Total,
		WhatsAppLink: resp.WhatsAppLink,
	}
	for _, line := range resp.Appointment.Items {
		out.Items = append(out.Items, itemFromLine(line))
	}
	return out
}

func itemFromLine(line domain.CartLine) ItemResponse {
	return ItemResponse{
		ServiceID: line.ID,
		Name:      line.Name,
		Price:     line.Price,
		Qty:       line.Qty,
	}
}
