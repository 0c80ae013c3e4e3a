package get_appointments

import (
	"time"

	"github.com/agendei-app/agendei-service/internal/domain"
)

// ItemResponse is one booked service line.
type ItemResponse struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// AppointmentResponse is the admin view of one booking.
type AppointmentResponse struct {
	ID            string         `json:"id"`
	Date          string         `json:"date"`
	Hour          int            `json:"hour"`
	Items         []ItemResponse `json:"items"`
	Total         float64        `json:"total"`
	CustomerName  string         `json:"customerName,omitempty"`
	CustomerPhone string         `json:"customerPhone,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// ListResponse wraps the appointment list with its count.
type ListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Count        int                   `json:"count"`
}

// FromDomainAppointments converts the store snapshot to the HTTP model.
func FromDomainAppointments(appts []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		items := make([]ItemResponse, 0, len(a.Items))
		for _, line := range a.Items {
			items = append(items, ItemResponse{
				ServiceID: line.ID,
				Name:      line.Name,
				Price:     line.Price,
				Qty:       line.Qty,
			})
		}
		out = append(out, AppointmentResponse{
			ID:            a.ID,
			Date:          a.DateISO,
			Hour:          a.Hour,
			Items:         items,
			Total:         a.Total,
			CustomerName:  a.CustomerName,
			CustomerPhone: a.CustomerPhone,
			CreatedAt:     a.CreatedAt,
		})
	}
	return out
}
