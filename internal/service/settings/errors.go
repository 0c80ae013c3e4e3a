package settings

import "errors"

var (
	// ErrInvalidOpeningHours is returned when the opening hour range is out
	// of 0-23 or start exceeds end.
	ErrInvalidOpeningHours = errors.New("settings: invalid opening hours")

	// ErrInvalidDaysAhead is returned when the scheduling window is outside
	// 1-30 days.
	ErrInvalidDaysAhead = errors.New("settings: invalid days ahead")

	// ErrInvalidCutoff is returned when the current-hour cutoff is outside
	// 0-59 minutes.
	ErrInvalidCutoff = errors.New("settings: invalid current hour cutoff")

	// ErrInvalidBannerInterval is returned when the banner rotation interval
	// is out of bounds.
	ErrInvalidBannerInterval = errors.New("settings: invalid banner interval")

	// ErrInvalidService is returned when a catalog entry is malformed.
	ErrInvalidService = errors.New("settings: invalid service item")

	// ErrDuplicateService is returned when two catalog entries share an ID.
	ErrDuplicateService = errors.New("settings: duplicate service id")

	// ErrInvalidBlockedDate is returned when a blocked date is not a valid
	// ISO date.
	ErrInvalidBlockedDate = errors.New("settings: invalid blocked date")

	// ErrInvalidBlockedHour is returned when a blocked hour is outside 0-23
	// or keyed by a malformed date.
	ErrInvalidBlockedHour = errors.New("settings: invalid blocked hour")

	// ErrInvalidBanner is returned when a partner banner is malformed.
	ErrInvalidBanner = errors.New("settings: invalid partner banner")

	// ErrInvalidSalonName is returned when the salon name is empty or too
	// long.
	ErrInvalidSalonName = errors.New("settings: invalid salon name")
)
