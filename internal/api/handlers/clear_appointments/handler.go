package clear_appointments

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

// Handle DELETE /api/v1/appointments
// Clears the full history and persists the empty record right away.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cleared := h.store.Count()
	h.store.ClearAll(r.Context())

	h.logger.Info("DELETE /appointments - Cleared %d appointments", cleared)
	handlers.RespondJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}
