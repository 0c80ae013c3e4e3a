package settings

import "github.com/agendei-app/agendei-service/internal/domain"

// Patch is a partial settings update. Nil fields are left untouched; set
// fields replace the current value wholesale (shallow merge).
type Patch struct {
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
	AdminPasswordHash     *string                 `json:"-"` // never bound from JSON
}

// applyTo merges the patch into the target settings.
func (p *Patch) applyTo(s *domain.Settings) {
	if p.SalonName != nil {
		s.SalonName = *p.SalonName
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.LogoURL != nil {
		s.LogoURL = *p.LogoURL
	}
	if p.OpeningHourStart != nil {
		s.OpeningHourStart = *p.OpeningHourStart
	}
	if p.OpeningHourEnd != nil {
		s.OpeningHourEnd = *p.OpeningHourEnd
	}
	if p.DaysAhead != nil {
		s.DaysAhead = *p.DaysAhead
	}
	if p.BlockedDates != nil {
		s.BlockedDates = append([]string(nil), (*p.BlockedDates)...)
	}
	if p.BlockedHours != nil {
		next := make(map[string][]int, len(*p.BlockedHours))
		for date, hours := range *p.BlockedHours {
			next[date] = append([]int(nil), hours...)
		}
		s.BlockedHours = next
	}
	if p.Services != nil {
		s.Services = append([]domain.ServiceItem(nil), (*p.Services)...)
	}
	if p.PartnerBanners != nil {
		s.PartnerBanners = append([]domain.PartnerBanner(nil), (*p.PartnerBanners)...)
	}
	if p.PartnerBannerInterval != nil {
		s.PartnerBannerInterval = *p.PartnerBannerInterval
	}
	if p.CurrentHourCutoffMin != nil {
		s.CurrentHourCutoffMin = *p.CurrentHourCutoffMin
	}
	if p.BannerAccess != nil {
		s.BannerAccess = *p.BannerAccess
	}
	if p.AdminPasswordHash != nil {
		s.AdminPasswordHash = *p.AdminPasswordHash
	}
}
