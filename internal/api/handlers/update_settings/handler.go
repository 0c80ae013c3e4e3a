package update_settings

import (
	"errors"
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	settingsService "github.com/agendei-app/agendei-service/internal/service/settings"
	"github.com/agendei-app/agendei-service/internal/service/settings/models"
)

const (
	msgInvalidBody           = "corpo da requisição inválido"
	msgInvalidSalonName      = "nome do salão inválido"
	msgInvalidOpeningHours   = "horário de funcionamento inválido"
	msgInvalidDaysAhead      = "janela de agendamento inválida (1 a 30 dias)"
	msgInvalidCutoff         = "tolerância de minutos inválida (0 a 59)"
	msgInvalidBannerInterval = "intervalo de banners inválido"
	msgInvalidService        = "serviço inválido"
	msgDuplicateService      = "serviço duplicado"
	msgInvalidBlockedDate    = "data bloqueada inválida"
	msgInvalidBlockedHour    = "horário bloqueado inválido"
	msgInvalidBanner         = "banner inválido"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settingsService.ErrInvalidSalonName):
		handlers.RespondBadRequest(w, msgInvalidSalonName)
	case errors.Is(err, settingsService.ErrInvalidOpeningHours):
		handlers.RespondBadRequest(w, msgInvalidOpeningHours)
	case errors.Is(err, settingsService.ErrInvalidDaysAhead):
		handlers.RespondBadRequest(w, msgInvalidDaysAhead)
	case errors.Is(err, settingsService.ErrInvalidCutoff):
		handlers.RespondBadRequest(w, msgInvalidCutoff)
	case errors.Is(err, settingsService.ErrInvalidBannerInterval):
		handlers.RespondBadRequest(w, msgInvalidBannerInterval)
	case errors.Is(err, settingsService.ErrInvalidService):
		handlers.RespondBadRequest(w, msgInvalidService)
	case errors.Is(err, settingsService.ErrDuplicateService):
		handlers.RespondBadRequest(w, msgDuplicateService)
	case errors.Is(err, settingsService.ErrInvalidBlockedDate):
		handlers.RespondBadRequest(w, msgInvalidBlockedDate)
	case errors.Is(err, settingsService.ErrInvalidBlockedHour):
		handlers.RespondBadRequest(w, msgInvalidBlockedHour)
	case errors.Is(err, settingsService.ErrInvalidBanner):
		handlers.RespondBadRequest(w, msgInvalidBanner)
	default:
		h.logger.Error("PUT /settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
	}
}
