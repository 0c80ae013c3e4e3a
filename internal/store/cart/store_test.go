package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendei-app/agendei-service/internal/domain"
)

var (
	corteFeminino = domain.ServiceItem{ID: "corte-feminino", Name: "Corte Feminino", Price: 60}
	barba         = domain.ServiceItem{ID: "barba", Name: "Barba", Price: 30}
)

func TestAddIncrementsExistingLine(t *testing.T) {
	s := New()

	s.Add("sess", corteFeminino)
	s.Add("sess", corteFeminino)

	lines := s.Get("sess")
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
	assert.Equal(t, 120.0, s.Total("sess"))
}

func TestDecreaseRemovesLineAtZero(t *testing.T) {
	s := New()
	s.Add("sess", corteFeminino)
	s.Add("sess", corteFeminino)

	s.Decrease("sess", "corte-feminino")
	assert.Equal(t, 60.0, s.Total("sess"))

	s.Decrease("sess", "corte-feminino")
	assert.Empty(t, s.Get("sess"))
	assert.Equal(t, 0.0, s.Total("sess"))

	// No line may survive with qty <= 0.
	for _, line := range s.Get("sess") {
		assert.Greater(t, line.Qty, 0)
	}
}

func TestIncreaseUnknownLineIsNoop(t *testing.T) {
	s := New()
	s.Add("sess", corteFeminino)

	s.Increase("sess", "nope")
	s.Decrease("sess", "nope")

	lines := s.Get("sess")
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Qty)
}

func TestRemoveDropsLineRegardlessOfQty(t *testing.T) {
	s := New()
	s.Add("sess", corteFeminino)
	s.Add("sess", corteFeminino)
	s.Add("sess", barba)

	s.Remove("sess", "corte-feminino")

	lines := s.Get("sess")
	require.Len(t, lines, 1)
	assert.Equal(t, "barba", lines[0].ID)
}

func TestClearEmptiesOnlyThatSession(t *testing.T) {
	s := New()
	s.Add("a", corteFeminino)
	s.Add("b", barba)

	s.Clear("a")

	assert.Empty(t, s.Get("a"))
	require.Len(t, s.Get("b"), 1)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := New()
	s.Add("a", corteFeminino)
	s.Add("b", corteFeminino)
	s.Add("b", corteFeminino)

	assert.Equal(t, 60.0, s.Total("a"))
	assert.Equal(t, 120.0, s.Total("b"))
	assert.Empty(t, s.Get("c"))
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()
	s.Add("sess", corteFeminino)

	lines := s.Get("sess")
	lines[0].Qty = 99

	assert.Equal(t, 1, s.Get("sess")[0].Qty)
}
