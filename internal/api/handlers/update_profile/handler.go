package update_profile

import (
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/api/middleware"
	profileStore "github.com/agendei-app/agendei-service/internal/store/profile"
	"github.com/agendei-app/agendei-service/pkg/whatsapp"
)

const (
	msgInvalidBody  = "corpo da requisição inválido"
	msgInvalidPhone = "telefone inválido, use DDD + número"
)

type Handler struct {
	profiles ProfileStore
	logger   Logger
}

func NewHandler(profiles ProfileStore, logger Logger) *Handler {
	return &Handler{profiles: profiles, logger: logger}
}

// Handle PUT /api/v1/profile
// Fields absent from the body keep their stored value.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var patch profileStore.Patch
	if err := handlers.DecodeJSON(r, &patch); err != nil {
		h.logger.Warn("PUT /profile - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if patch.Phone != nil && *patch.Phone != "" && !whatsapp.IsValidNumber(*patch.Phone) {
		handlers.RespondBadRequest(w, msgInvalidPhone)
		return
	}

	sessionID := middleware.SessionID(r.Context())
	updated := h.profiles.Update(r.Context(), sessionID, patch)

	handlers.RespondJSON(w, http.StatusOK, updated)
}
