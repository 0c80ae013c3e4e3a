package change_password

import (
	"errors"
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/service/auth"
	"github.com/agendei-app/agendei-service/pkg/password"
)

const (
	msgInvalidBody        = "corpo da requisição inválido"
	msgInvalidCredentials = "senha atual incorreta"
	msgWeakPassword       = "a nova senha não atende aos critérios de segurança"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/auth/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /auth/password - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err := h.service.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		case errors.Is(err, auth.ErrWeakPassword):
			handlers.RespondJSON(w, http.StatusBadRequest, &WeakPasswordResponse{
				Error:    msgWeakPassword,
				Criteria: password.Evaluate(req.NewPassword),
			})
		default:
			h.logger.Error("PUT /auth/password - Failed to change password: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
