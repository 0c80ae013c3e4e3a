// Package settings implements the admin panel operations over the settings
// store. All range checking lives here; the store itself persists whatever
// it is told.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agendei-app/agendei-service/internal/domain"
	"github.com/agendei-app/agendei-service/internal/service/settings/models"
)

// Service validates and applies admin configuration changes.
type Service struct {
	store  SettingsStore
	logger Logger
}

// NewService creates the settings service.
func NewService(store SettingsStore, logger Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the current settings without the password hash.
func (s *Service) Get(_ context.Context) *models.SettingsResponse {
	return models.FromDomainSettings(s.store.Get())
}

// Update validates the patch against the merged result and persists it.
// Validation runs on a merged copy so a patch touching only one opening
// hour is still checked against the other.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	normalizeBanners(req)

	merged := s.store.Get()
	patch := req.ToPatch()
	applyPreview(&merged, req)

	if err := validateSettings(&merged); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	next := s.store.Update(ctx, patch)
	s.logger.Info("Update: settings updated (salon=%q, window=%dd, hours=%02d-%02d)",
		next.SalonName, next.DaysAhead, next.OpeningHourStart, next.OpeningHourEnd)
	return models.FromDomainSettings(next), nil
}

// applyPreview merges the request into a settings copy for validation only.
func applyPreview(s *domain.Settings, req *models.UpdateSettingsRequest) {
	if req.SalonName != nil {
		s.SalonName = *req.SalonName
	}
	if req.OpeningHourStart != nil {
		s.OpeningHourStart = *req.OpeningHourStart
	}
	if req.OpeningHourEnd != nil {
		s.OpeningHourEnd = *req.OpeningHourEnd
	}
	if req.DaysAhead != nil {
		s.DaysAhead = *req.DaysAhead
	}
	if req.CurrentHourCutoffMin != nil {
		s.CurrentHourCutoffMin = *req.CurrentHourCutoffMin
	}
	if req.PartnerBannerInterval != nil {
		s.PartnerBannerInterval = *req.PartnerBannerInterval
	}
	if req.BlockedDates != nil {
		s.BlockedDates = *req.BlockedDates
	}
	if req.BlockedHours != nil {
		s.BlockedHours = *req.BlockedHours
	}
	if req.Services != nil {
		s.Services = *req.Services
	}
	if req.PartnerBanners != nil {
		s.PartnerBanners = *req.PartnerBanners
	}
}

// normalizeBanners assigns IDs to new banners and defaults their display
// mode.
func normalizeBanners(req *models.UpdateSettingsRequest) {
	if req.PartnerBanners == nil {
		return
	}
	banners := *req.PartnerBanners
	for i := range banners {
		if banners[i].ID == "" {
			banners[i].ID = uuid.NewString()
		}
		if banners[i].DisplayMode == "" {
			banners[i].DisplayMode = "contain"
		}
	}
}

func validateSettings(s *domain.Settings) error {
	if s.SalonName == "" || len(s.SalonName) > domain.MaxSalonNameLength {
		return ErrInvalidSalonName
	}

	if s.OpeningHourStart < domain.MinOpeningHour || s.OpeningHourStart > domain.MaxOpeningHour ||
		s.OpeningHourEnd < domain.MinOpeningHour || s.OpeningHourEnd > domain.MaxOpeningHour ||
		s.OpeningHourStart > s.OpeningHourEnd {
		return ErrInvalidOpeningHours
	}

	if s.DaysAhead < domain.MinDaysAhead || s.DaysAhead > domain.MaxDaysAhead {
		return ErrInvalidDaysAhead
	}

	if s.CurrentHourCutoffMin < domain.MinCurrentHourCutoffMin ||
		s.CurrentHourCutoffMin > domain.MaxCurrentHourCutoffMin {
		return ErrInvalidCutoff
	}

	if s.PartnerBannerInterval < domain.MinBannerIntervalMs ||
		s.PartnerBannerInterval > domain.MaxBannerIntervalMs {
		return ErrInvalidBannerInterval
	}

	seen := make(map[string]struct{}, len(s.Services))
	for _, item := range s.Services {
		if item.ID == "" || item.Name == "" || len(item.Name) > domain.MaxServiceNameLength {
			return fmt.Errorf("%w: id=%q name=%q", ErrInvalidService, item.ID, item.Name)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: negative price for %q", ErrInvalidService, item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateService, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	for _, d := range s.BlockedDates {
		if _, err := time.Parse(domain.DateFormat, d); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidBlockedDate, d)
		}
	}

	for date, hours := range s.BlockedHours {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: date %q", ErrInvalidBlockedHour, date)
		}
		for _, h := range hours {
			if h < 0 || h > 23 {
				return fmt.Errorf("%w: hour %d on %s", ErrInvalidBlockedHour, h, date)
			}
		}
	}

	for _, b := range s.PartnerBanners {
		if b.ImageURL == "" {
			return fmt.Errorf("%w: missing image", ErrInvalidBanner)
		}
		if b.DisplayMode != "contain" && b.DisplayMode != "cover" {
			return fmt.Errorf("%w: display mode %q", ErrInvalidBanner, b.DisplayMode)
		}
	}

	return nil
}
