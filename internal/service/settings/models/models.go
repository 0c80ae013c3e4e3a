package models

import (
	"github.com/agendei-app/agendei-service/internal/domain"
	settingsStore "github.com/agendei-app/agendei-service/internal/store/settings"
)

// UpdateSettingsRequest is a partial admin update. Absent fields keep their
// current value; present fields replace it wholesale, matching the store's
// shallow-merge semantics.
type UpdateSettingsRequest struct {
	SalonName             *string                 `json:"salonName,omitempty"`
	Phone                 *string                 `json:"phone,omitempty"`
	LogoURL               *string                 `json:"logoUrl,omitempty"`
	OpeningHourStart      *int                    `json:"openingHourStart,omitempty"`
	OpeningHourEnd        *int                    `json:"openingHourEnd,omitempty"`
	DaysAhead             *int                    `json:"daysAhead,omitempty"`
	BlockedDates          *[]string               `json:"blockedDates,omitempty"`
	BlockedHours          *map[string][]int       `json:"blockedHours,omitempty"`
	Services              *[]domain.ServiceItem   `json:"services,omitempty"`
	PartnerBanners        *[]domain.PartnerBanner `json:"partnerBanners,omitempty"`
	PartnerBannerInterval *int                    `json:"partnerBannerIntervalMs,omitempty"`
	CurrentHourCutoffMin  *int                    `json:"currentHourCutoffMin,omitempty"`
	BannerAccess          *domain.BannerAccess    `json:"bannerAccess,omitempty"`
}

// ToPatch maps the request onto a store patch.
func (r *UpdateSettingsRequest) ToPatch() settingsStore.Patch {
	return settingsStore.Patch{
		SalonName:             r.SalonName,
		Phone:                 r.Phone,
		LogoURL:               r.LogoURL,
		OpeningHourStart:      r.OpeningHourStart,
		OpeningHourEnd:        r.OpeningHourEnd,
		DaysAhead:             r.DaysAhead,
		BlockedDates:          r.BlockedDates,
		BlockedHours:          r.BlockedHours,
		Services:              r.Services,
		PartnerBanners:        r.PartnerBanners,
		PartnerBannerInterval: r.PartnerBannerInterval,
		CurrentHourCutoffMin:  r.CurrentHourCutoffMin,
		BannerAccess:          r.BannerAccess,
	}
}

// SettingsResponse is the settings view returned over HTTP. The admin
// password hash never leaves the service.
type SettingsResponse struct {
	SalonName             string                 `json:"salonName"`
	Phone                 string                 `json:"phone"`
	LogoURL               string                 `json:"logoUrl,omitempty"`
	OpeningHourStart      int                    `json:"openingHourStart"`
	OpeningHourEnd        int                    `json:"openingHourEnd"`
	DaysAhead             int                    `json:"daysAhead"`
	BlockedDates          []string               `json:"blockedDates"`
	BlockedHours          map[string][]int       `json:"blockedHours"`
	Services              []domain.ServiceItem   `json:"services"`
	PartnerBanners        []domain.PartnerBanner `json:"partnerBanners"`
	PartnerBannerInterval int                    `json:"partnerBannerIntervalMs"`
	CurrentHourCutoffMin  int                    `json:"currentHourCutoffMin"`
	BannerAccess          domain.BannerAccess    `json:"bannerAccess,omitempty"`
}

// FromDomainSettings builds the redacted HTTP view.
func FromDomainSettings(s domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		SalonName:             s.SalonName,
		Phone:                 s.Phone,
		LogoURL:               s.LogoURL,
		OpeningHourStart:      s.OpeningHourStart,
		OpeningHourEnd:        s.OpeningHourEnd,
		DaysAhead:             s.DaysAhead,
		BlockedDates:          s.BlockedDates,
		BlockedHours:          s.BlockedHours,
		Services:              s.Services,
		PartnerBanners:        s.PartnerBanners,
		PartnerBannerInterval: s.PartnerBannerInterval,
		CurrentHourCutoffMin:  s.CurrentHourCutoffMin,
		BannerAccess:          s.BannerAccess,
	}
}
