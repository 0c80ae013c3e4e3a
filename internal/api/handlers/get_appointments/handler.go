package get_appointments

import (
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
)

type Handler struct {
	store  AppointmentStore
	logger Logger
}

func NewHandler(store AppointmentStore, logger Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appts := h.store.List()
	handlers.RespondJSON(w, http.StatusOK, &ListResponse{
		Appointments: FromDomainAppointments(appts),
		Count:        len(appts),
	})
}
