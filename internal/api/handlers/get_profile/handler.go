package get_profile

import (
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/api/middleware"
)

type Handler struct {
	profiles ProfileStore
	logger   Logger
}

func NewHandler(profiles ProfileStore, logger Logger) *Handler {
	return &Handler{profiles: profiles, logger: logger}
}

// Handle GET /api/v1/profile
// A session that never saved a profile gets an empty one, not a 404.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	handlers.RespondJSON(w, http.StatusOK, h.profiles.Get(r.Context(), sessionID))
}
