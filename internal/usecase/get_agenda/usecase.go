package get_agenda

import (
	"context"
	"time"

	"github.com/agendei-app/agendei-service/internal/domain"
)

// UseCase builds the agenda view: the visible day window plus the
// availability of every opening-hour slot on the target date.
type UseCase struct {
	settings     SettingsProvider
	occupancy    OccupancyChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the agenda use case.
func NewUseCase(settings SettingsProvider, occupancy OccupancyChecker, logger Logger) *UseCase {
	return &UseCase{
		settings:     settings,
		occupancy:    occupancy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the agenda for the requested date (today when absent).
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()
	cfg := uc.settings.Get()

	target, err := resolveTargetDate(req.Date, now, cfg.DaysAhead)
	if err != nil {
		uc.logger.Warn("GetAgenda: date validation failed: %v", err)
		return nil, err
	}
	targetISO := target.Format(domain.DateFormat)

	days := make([]Day, 0, cfg.DaysAhead)
	for _, d := range domain.NextDays(now, cfg.DaysAhead) {
		iso := d.Format(domain.DateFormat)
		days = append(days, Day{DateISO: iso, Blocked: cfg.IsDateBlocked(iso)})
	}

	dateBlocked := cfg.IsDateBlocked(targetISO)
	hours := domain.HourlySlots(cfg.OpeningHourStart, cfg.OpeningHourEnd)
	slots := make([]Slot, 0, len(hours))
	for _, h := range hours {
		reason := domain.EvaluateSlot(domain.SlotCheck{
			Now:            now,
			CutoffMin:      cfg.CurrentHourCutoffMin,
			DateISO:        targetISO,
			Hour:           h,
			Occupied:       uc.occupancy.IsOccupied(targetISO, h),
			BlockedByAdmin: dateBlocked || cfg.IsHourBlocked(targetISO, h),
		})
		slots = append(slots, Slot{Hour: h, Disabled: reason != "", Reason: reason})
	}

	uc.logger.Info("GetAgenda: date=%s, %d days, %d slots", targetISO, len(days), len(slots))
	return &Response{DateISO: targetISO, Days: days, Slots: slots}, nil
}

// resolveTargetDate defaults to today and rejects dates outside the
// [today, today+daysAhead) window.
func resolveTargetDate(date *time.Time, now time.Time, daysAhead int) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date == nil {
		return today, nil
	}

	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if target.Before(today) || !target.Before(today.AddDate(0, 0, daysAhead)) {
		return time.Time{}, ErrDateOutsideWindow
	}
	return target, nil
}
