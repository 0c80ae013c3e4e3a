package get_agenda

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendei-app/agendei-service/internal/domain"
)

type settingsFake struct{ cfg domain.Settings }

func (f settingsFake) Get() domain.Settings { return f.cfg.Clone() }

type occupancyFake map[string]bool

func (f occupancyFake) IsOccupied(dateISO string, hour int) bool {
	return f[slotKey(dateISO, hour)]
}

func slotKey(dateISO string, hour int) string {
	return fmt.Sprintf("%s#%02d", dateISO, hour)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-06-10 10:40, five minute cutoff already expired for the 10:00 slot.
var testNow = time.Date(2025, 6, 10, 10, 40, 0, 0, time.UTC)

func newTestUseCase(cfg domain.Settings, occupied occupancyFake) *UseCase {
	uc := NewUseCase(settingsFake{cfg}, occupied, nopLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func TestExecuteDefaultsToToday(t *testing.T) {
	uc := newTestUseCase(domain.DefaultSettings(), occupancyFake{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", resp.DateISO)
	require.Len(t, resp.Days, domain.DefaultDaysAhead)
	assert.Equal(t, "2025-06-10", resp.Days[0].DateISO)
	assert.Equal(t, "2025-06-16", resp.Days[6].DateISO)

	// Opening hours 9..18 inclusive.
	require.Len(t, resp.Slots, 10)

	bySlot := map[int]Slot{}
	for _, s := range resp.Slots {
		bySlot[s.Hour] = s
	}
	assert.Equal(t, domain.ReasonPast, bySlot[9].Reason)
	assert.Equal(t, domain.ReasonCutoff, bySlot[10].Reason)
	assert.False(t, bySlot[11].Disabled)
	assert.False(t, bySlot[18].Disabled)
}

func TestExecuteFutureDateIgnoresClock(t *testing.T) {
	uc := newTestUseCase(domain.DefaultSettings(), occupancyFake{})

	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: &date})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.False(t, s.Disabled, "hour %d", s.Hour)
	}
}

func TestExecuteOccupiedWinsOnFutureDate(t *testing.T) {
	uc := newTestUseCase(domain.DefaultSettings(), occupancyFake{
		slotKey("2025-06-11", 9): true,
	})

	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: &date})
	require.NoError(t, err)

	assert.Equal(t, domain.ReasonOccupied, resp.Slots[0].Reason)
	assert.False(t, resp.Slots[1].Disabled)
}

func TestExecuteBlockedDateDisablesEverySlot(t *testing.T) {
	cfg := domain.DefaultSettings()
	cfg.BlockedDates = []string{"2025-06-11"}

	uc := newTestUseCase(cfg, occupancyFake{})

	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: &date})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		assert.Equal(t, domain.ReasonBlocked, s.Reason, "hour %d", s.Hour)
	}

	// The day window flags the date too.
	assert.True(t, resp.Days[1].Blocked)
	assert.False(t, resp.Days[0].Blocked)
}

func TestExecuteBlockedHour(t *testing.T) {
	cfg := domain.DefaultSettings()
	cfg.BlockedHours = map[string][]int{"2025-06-11": {14}}

	uc := newTestUseCase(cfg, occupancyFake{})

	date := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: &date})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		if s.Hour == 14 {
			assert.Equal(t, domain.ReasonBlocked, s.Reason)
		} else {
			assert.False(t, s.Disabled, "hour %d", s.Hour)
		}
	}
}

func TestExecuteRejectsDatesOutsideWindow(t *testing.T) {
	uc := newTestUseCase(domain.DefaultSettings(), occupancyFake{})

	past := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{Date: &past})
	assert.ErrorIs(t, err, ErrDateOutsideWindow)

	// daysAhead=7 makes 2025-06-16 the last visible day.
	tooFar := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), &Request{Date: &tooFar})
	assert.ErrorIs(t, err, ErrDateOutsideWindow)

	lastVisible := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), &Request{Date: &lastVisible})
	assert.NoError(t, err)
}
