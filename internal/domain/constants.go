package domain

// Business validation constants. The settings store itself performs no
// range checks; callers validate against these bounds before updating.
const (
	MinOpeningHour = 0
	MaxOpeningHour = 23

	MinDaysAhead = 1
	MaxDaysAhead = 30

	MinCurrentHourCutoffMin = 0
	MaxCurrentHourCutoffMin = 59

	MinBannerIntervalMs = 1000
	MaxBannerIntervalMs = 60000

	MaxSalonNameLength   = 120
	MaxServiceNameLength = 120
)

// Default configuration values.
const (
	DefaultOpeningHourStart     = 9
	DefaultOpeningHourEnd       = 18
	DefaultDaysAhead            = 7
	DefaultCurrentHourCutoffMin = 5
	DefaultBannerIntervalMs     = 5000
	DefaultSalonName            = "Agendei"
	DefaultPhone                = "5599999999999"
	DefaultAdminPassword        = "Admin123!"
)

// Time format constants.
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD, the ISO date key for slots
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY, shown in confirmation messages
)
