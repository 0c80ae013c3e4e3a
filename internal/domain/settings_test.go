package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultSalonName, s.SalonName)
	assert.Equal(t, DefaultPhone, s.Phone)
	assert.Equal(t, DefaultOpeningHourStart, s.OpeningHourStart)
	assert.Equal(t, DefaultOpeningHourEnd, s.OpeningHourEnd)
	assert.Equal(t, DefaultDaysAhead, s.DaysAhead)
	assert.Equal(t, DefaultCurrentHourCutoffMin, s.CurrentHourCutoffMin)

	require.Len(t, s.Services, 5)
	assert.Equal(t, "Corte Feminino", s.Services[0].Name)
	assert.Equal(t, 60.0, s.Services[0].Price)

	// The factory credential must verify against the default password.
	err := bcrypt.CompareHashAndPassword([]byte(s.AdminPasswordHash), []byte(DefaultAdminPassword))
	assert.NoError(t, err)
}

func TestSettingsCloneIsIndependent(t *testing.T) {
	original := DefaultSettings()
	original.BlockedDates = []string{"2025-06-10"}
	original.BlockedHours = map[string][]int{"2025-06-11": {9, 10}}

	clone := original.Clone()
	clone.BlockedDates[0] = "2030-01-01"
	clone.BlockedHours["2025-06-11"][0] = 15
	clone.Services[0].Price = 999

	assert.Equal(t, "2025-06-10", original.BlockedDates[0])
	assert.Equal(t, 9, original.BlockedHours["2025-06-11"][0])
	assert.Equal(t, 60.0, original.Services[0].Price)
}

func TestSettingsBlockedChecks(t *testing.T) {
	s := DefaultSettings()
	s.BlockedDates = []string{"2025-06-10"}
	s.BlockedHours = map[string][]int{"2025-06-11": {9, 14}}

	assert.True(t, s.IsDateBlocked("2025-06-10"))
	assert.False(t, s.IsDateBlocked("2025-06-11"))

	assert.True(t, s.IsHourBlocked("2025-06-11", 9))
	assert.True(t, s.IsHourBlocked("2025-06-11", 14))
	assert.False(t, s.IsHourBlocked("2025-06-11", 10))
	assert.False(t, s.IsHourBlocked("2025-06-10", 9))
}

func TestServiceByID(t *testing.T) {
	s := DefaultSettings()

	item := s.ServiceByID(s.Services[2].ID)
	require.NotNil(t, item)
	assert.Equal(t, "Corte Masculino", item.Name)

	assert.Nil(t, s.ServiceByID("nope"))
}

func TestCartTotals(t *testing.T) {
	lines := []CartLine{
		{ServiceItem: ServiceItem{ID: "a", Name: "Corte Feminino", Price: 60}, Qty: 2},
		{ServiceItem: ServiceItem{ID: "b", Name: "Barba", Price: 30}, Qty: 1},
	}

	assert.Equal(t, 120.0, lines[0].LineTotal())
	assert.Equal(t, 150.0, CartTotal(lines))
	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestAppointmentOccupies(t *testing.T) {
	a := Appointment{DateISO: "2025-06-10", Hour: 9}

	assert.True(t, a.Occupies("2025-06-10", 9))
	assert.False(t, a.Occupies("2025-06-10", 10))
	assert.False(t, a.Occupies("2025-06-11", 9))
}
