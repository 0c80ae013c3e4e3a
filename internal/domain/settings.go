package domain

import (
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// BannerAccess controls who may manage partner banners in the admin panel.
type BannerAccess string

const (
	BannerAccessDeveloper BannerAccess = "developer"
	BannerAccessAdmin     BannerAccess = "admin"
)

// PartnerBanner is a rotating partner advertisement managed via the admin
// panel.
type PartnerBanner struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Href        string `json:"href,omitempty"`
	DisplayMode string `json:"displayMode,omitempty"` // "contain" or "cover"
}

// Settings is the business-wide configuration singleton. It is persisted as
// a single JSON record; on load, stored fields shallow-merge over defaults
// so shape drift between saved and default settings fills gaps silently.
type Settings struct {
	SalonName             string           `json:"salonName"`
	Phone                 string           `json:"phone"` // business WhatsApp number
	LogoURL               string           `json:"logoUrl,omitempty"`
	OpeningHourStart      int              `json:"openingHourStart"` // 24h format, e.g. 9
	OpeningHourEnd        int              `json:"openingHourEnd"`   // e.g. 18
	DaysAhead             int              `json:"daysAhead"`        // scheduling window length
	BlockedDates          []string         `json:"blockedDates"`     // ISO dates disabled in the agenda
	BlockedHours          map[string][]int `json:"blockedHours"`     // ISO date -> blocked hours
	Services              []ServiceItem    `json:"services"`
	PartnerBanners        []PartnerBanner  `json:"partnerBanners"`
	PartnerBannerInterval int              `json:"partnerBannerIntervalMs"`
	CurrentHourCutoffMin  int              `json:"currentHourCutoffMin"` // grace minutes for the current hour slot
	BannerAccess          BannerAccess     `json:"bannerAccess,omitempty"`
	AdminPasswordHash     string           `json:"adminPasswordHash"`
}

var (
	defaultHashOnce sync.Once
	defaultHash     string
)

// defaultAdminPasswordHash hashes the factory password once per process.
func defaultAdminPasswordHash() string {
	defaultHashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			panic("domain: hash default admin password: " + err.Error())
		}
		defaultHash = string(h)
	})
	return defaultHash
}

// DefaultSettings returns the factory configuration used until the admin
// customizes the salon.
func DefaultSettings() Settings {
	return Settings{
		SalonName:        DefaultSalonName,
		Phone:            DefaultPhone,
		OpeningHourStart: DefaultOpeningHourStart,
		OpeningHourEnd:   DefaultOpeningHourEnd,
		DaysAhead:        DefaultDaysAhead,
		BlockedDates:     []string{},
		BlockedHours:     map[string][]int{},
		Services: []ServiceItem{
			{ID: "corte-feminino", Name: "Corte Feminino", Price: 60},
			{ID: "escova", Name: "Escova", Price: 50},
			{ID: "corte-masculino", Name: "Corte Masculino", Price: 40},
			{ID: "barba", Name: "Barba", Price: 30},
			{ID: "manicure", Name: "Manicure", Price: 35},
		},
		PartnerBanners:        []PartnerBanner{},
		PartnerBannerInterval: DefaultBannerIntervalMs,
		CurrentHourCutoffMin:  DefaultCurrentHourCutoffMin,
		BannerAccess:          BannerAccessDeveloper,
		AdminPasswordHash:     defaultAdminPasswordHash(),
	}
}

// Clone returns a deep copy so callers can hold a snapshot without racing
// the store.
func (s Settings) Clone() Settings {
	out := s
	out.BlockedDates = append([]string(nil), s.BlockedDates...)
	out.Services = append([]ServiceItem(nil), s.Services...)
	out.PartnerBanners = append([]PartnerBanner(nil), s.PartnerBanners...)
	out.BlockedHours = make(map[string][]int, len(s.BlockedHours))
	for date, hours := range s.BlockedHours {
		out.BlockedHours[date] = append([]int(nil), hours...)
	}
	return out
}

// IsDateBlocked reports whether the admin disabled the whole date.
func (s *Settings) IsDateBlocked(dateISO string) bool {
	for _, d := range s.BlockedDates {
		if d == dateISO {
			return true
		}
	}
	return false
}

// IsHourBlocked reports whether the admin disabled a specific hour of a date.
func (s *Settings) IsHourBlocked(dateISO string, hour int) bool {
	for _, h := range s.BlockedHours[dateISO] {
		if h == hour {
			return true
		}
	}
	return false
}

// ServiceByID looks up a catalog item. Returns nil when absent.
func (s *Settings) ServiceByID(id string) *ServiceItem {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}

// SortedBlockedHours returns the blocked hours of a date in ascending order.
func (s *Settings) SortedBlockedHours(dateISO string) []int {
	hours := append([]int(nil), s.BlockedHours[dateISO]...)
	sort.Ints(hours)
	return hours
}
