package confirm_booking

import (
	"context"
	"errors"
	"time"

	"github.com/agendei-app/agendei-service/internal/domain"
	"github.com/agendei-app/agendei-service/internal/store/appointments"
	"github.com/agendei-app/agendei-service/internal/store/profile"
	"github.com/agendei-app/agendei-service/pkg/ptr"
	"github.com/agendei-app/agendei-service/pkg/whatsapp"
)

// UseCase commits a booking: it re-validates the selected slot against the
// live clock and occupancy, appends the appointment, builds the WhatsApp
// handoff link and clears the cart. On any failure the cart is untouched so
// the customer can retry with another slot.
type UseCase struct {
	cart         CartStore
	appointments AppointmentStore
	settings     SettingsProvider
	profiles     ProfileStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking use case.
func NewUseCase(
	cart CartStore,
	appts AppointmentStore,
	settings SettingsProvider,
	profiles ProfileStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		cart:         cart,
		appointments: appts,
		settings:     settings,
		profiles:     profiles,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the booking flow for one submission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session=%s, date=%s, hour=%d",
		req.SessionID, req.Date.Format(domain.DateFormat), req.Hour)

	// 1. Contact details are checked at this boundary; the stores assume
	// pre-validated input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	cfg := uc.settings.Get()

	// 2. Without a valid salon WhatsApp number there is nowhere to hand the
	// booking off to.
	if !whatsapp.IsValidNumber(cfg.Phone) {
		uc.logger.Warn("ConfirmBooking: business phone not configured")
		return nil, ErrPhoneNotConfigured
	}

	// 3. A booking needs at least one service.
	items := uc.cart.Get(req.SessionID)
	if len(items) == 0 {
		uc.logger.Warn("ConfirmBooking: empty cart for session=%s", req.SessionID)
		return nil, ErrEmptyCart
	}

	dateISO := req.Date.Format(domain.DateFormat)
	if err := validateDateWindow(req.Date, now, cfg.DaysAhead); err != nil {
		uc.logger.Warn("ConfirmBooking: date outside window: %s", dateISO)
		return nil, err
	}

	// 4. Re-validate the slot at submit time; clock and occupancy may have
	// moved since the agenda was rendered.
	reason := domain.EvaluateSlot(domain.SlotCheck{
		Now:            now,
		CutoffMin:      cfg.CurrentHourCutoffMin,
		DateISO:        dateISO,
		Hour:           req.Hour,
		Occupied:       uc.appointments.IsOccupied(dateISO, req.Hour),
		BlockedByAdmin: cfg.IsDateBlocked(dateISO) || cfg.IsHourBlocked(dateISO, req.Hour),
	})
	switch reason {
	case "":
	case domain.ReasonOccupied:
		uc.logger.Warn("ConfirmBooking: slot %s %02d:00 occupied", dateISO, req.Hour)
		return nil, ErrSlotOccupied
	default:
		uc.logger.Warn("ConfirmBooking: slot %s %02d:00 unavailable (%s)", dateISO, req.Hour, reason)
		return nil, ErrSlotUnavailable
	}

	total := uc.cart.Total(req.SessionID)

	// 5. Commit. The store re-checks occupancy under its lock; a concurrent
	// submission surfaces here as a conflict and consumes nothing.
	appt, err := uc.appointments.Add(ctx, appointments.NewAppointment{
		DateISO:       dateISO,
		Hour:          req.Hour,
		Items:         items,
		Total:         total,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		if errors.Is(err, appointments.ErrSlotOccupied) {
			uc.logger.Warn("ConfirmBooking: slot %s %02d:00 taken at commit", dateISO, req.Hour)
			return nil, ErrSlotOccupied
		}
		return nil, err
	}

	// 6. Build the handoff link.
	message := buildConfirmationMessage(
		cfg.SalonName, dateISO, req.Hour,
		req.CustomerName, req.CustomerPhone, req.CustomerEmail,
		items, total,
	)
	link := whatsapp.BuildLink(cfg.Phone, message)

	// 7. Remember the contact details for the next booking, then consume
	// the cart.
	uc.profiles.Update(ctx, req.SessionID, profile.Patch{
		Name:  ptr.Ptr(req.CustomerName),
		Phone: ptr.Ptr(req.CustomerPhone),
		Email: ptr.Ptr(req.CustomerEmail),
	})
	uc.cart.Clear(req.SessionID)

	uc.logger.Info("ConfirmBooking: appointment %s committed for %s %02d:00, total=%.2f",
		appt.ID, dateISO, req.Hour, total)

	return &Response{Appointment: *appt, WhatsAppLink: link}, nil
}

// validateDateWindow rejects dates outside [today, today+daysAhead).
func validateDateWindow(date, now time.Time, daysAhead int) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if target.Before(today) || !target.Before(today.AddDate(0, 0, daysAhead)) {
		return ErrDateOutsideWindow
	}
	return nil
}
