package confirm_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/api/middleware"
	"github.com/agendei-app/agendei-service/internal/domain"
	confirmBooking "github.com/agendei-app/agendei-service/internal/usecase/confirm_booking"
)

const (
	msgInvalidBody        = "corpo da requisição inválido"
	msgInvalidDate        = "data inválida, formato esperado YYYY-MM-DD"
	msgInvalidName        = "informe seu nome"
	msgInvalidEmail       = "e-mail inválido"
	msgInvalidPhone       = "telefone inválido, use DDD + número"
	msgEmptyCart          = "selecione ao menos um serviço antes de agendar"
	msgSlotOccupied       = "este horário acabou de ser reservado, escolha outro"
	msgSlotUnavailable    = "este horário não está mais disponível"
	msgOutsideWindow      = "data fora da janela de agendamento"
	msgPhoneNotConfigured = "o salão ainda não configurou o WhatsApp para agendamentos"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body BookingRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, body.Date)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", body.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &confirmBooking.Request{
		SessionID:     middleware.SessionID(r.Context()),
		Date:          date,
		Hour:          body.Hour,
		CustomerName:  body.CustomerName,
		CustomerEmail: body.CustomerEmail,
		CustomerPhone: body.CustomerPhone,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.logger.Info("POST /bookings - Appointment %s committed for %s %02d:00",
		result.Appointment.ID, result.Appointment.DateISO, result.Appointment.Hour)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, confirmBooking.ErrInvalidName):
		handlers.RespondBadRequest(w, msgInvalidName)
	case errors.Is(err, confirmBooking.ErrInvalidEmail):
		handlers.RespondBadRequest(w, msgInvalidEmail)
	case errors.Is(err, confirmBooking.ErrInvalidPhone):
		handlers.RespondBadRequest(w, msgInvalidPhone)
	case errors.Is(err, confirmBooking.ErrEmptyCart):
		handlers.RespondBadRequest(w, msgEmptyCart)
	case errors.Is(err, confirmBooking.ErrDateOutsideWindow):
		handlers.RespondBadRequest(w, msgOutsideWindow)
	case errors.Is(err, confirmBooking.ErrSlotOccupied):
		h.logger.Warn("POST /bookings - Slot conflict: %v", err)
		handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)
	case errors.Is(err, confirmBooking.ErrSlotUnavailable):
		handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)
	case errors.Is(err, confirmBooking.ErrPhoneNotConfigured):
		h.logger.Error("POST /bookings - Business phone not configured")
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgPhoneNotConfigured)
	default:
		h.logger.Error("POST /bookings - Failed to confirm booking: %v", err)
		handlers.RespondInternalError(w)
	}
}
