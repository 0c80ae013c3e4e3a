package get_agenda

import (
	"errors"
	"net/http"
	"time"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/domain"
	getAgenda "github.com/agendei-app/agendei-service/internal/usecase/get_agenda"
)

const (
	msgInvalidDate   = "data inválida, formato esperado YYYY-MM-DD"
	msgOutsideWindow = "data fora da janela de agendamento"
)

type Handler struct {
	useCase GetAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetAgendaUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle GET /api/v1/agenda?date=YYYY-MM-DD
// Without a date parameter, today's agenda is returned.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAgenda.Request{}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /agenda - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAgenda.ErrDateOutsideWindow):
			h.logger.Warn("GET /agenda - Date outside window")
			handlers.RespondBadRequest(w, msgOutsideWindow)
		default:
			h.logger.Error("GET /agenda - Failed to build agenda: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
