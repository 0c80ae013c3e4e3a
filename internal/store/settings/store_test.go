package settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendei-app/agendei-service/internal/domain"
	"github.com/agendei-app/agendei-service/internal/infra/storage"
	"github.com/agendei-app/agendei-service/internal/infra/storage/memory"
	"github.com/agendei-app/agendei-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestLoadMissingRecordKeepsDefaults(t *testing.T) {
	s := New(memory.New(), nopLogger{})
	s.Load(context.Background())

	got := s.Get()
	assert.Equal(t, domain.DefaultSalonName, got.SalonName)
	assert.Equal(t, domain.DefaultDaysAhead, got.DaysAhead)
}

func TestLoadShallowMergesOverDefaults(t *testing.T) {
	mem := memory.New()
	mem.Seed(storage.KeySettings, []byte(`{"salonName":"Studio X","daysAhead":14}`))

	s := New(mem, nopLogger{})
	s.Load(context.Background())

	got := s.Get()
	assert.Equal(t, "Studio X", got.SalonName)
	assert.Equal(t, 14, got.DaysAhead)
	// Fields absent from the record keep their factory values.
	assert.Equal(t, domain.DefaultOpeningHourStart, got.OpeningHourStart)
	assert.Len(t, got.Services, 5)
}

func TestLoadMalformedRecordKeepsDefaults(t *testing.T) {
	mem := memory.New()
	mem.Seed(storage.KeySettings, []byte(`{not json`))

	s := New(mem, nopLogger{})
	s.Load(context.Background())

	assert.Equal(t, domain.DefaultSalonName, s.Get().SalonName)
}

func TestUpdatePersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()

	s := New(mem, nopLogger{})
	next := s.Update(ctx, Patch{
		SalonName: ptr.Ptr("Studio X"),
		DaysAhead: ptr.Ptr(14),
	})
	assert.Equal(t, "Studio X", next.SalonName)
	assert.Equal(t, 14, next.DaysAhead)

	// A fresh store over the same backend sees the persisted record.
	reloaded := New(mem, nopLogger{})
	reloaded.Load(ctx)
	got := reloaded.Get()
	assert.Equal(t, "Studio X", got.SalonName)
	assert.Equal(t, 14, got.DaysAhead)
	assert.Equal(t, domain.DefaultOpeningHourEnd, got.OpeningHourEnd)
}

func TestUpdateSwallowsWriteFailure(t *testing.T) {
	mem := memory.New()
	mem.WriteErr = errors.New("disk full")

	s := New(mem, nopLogger{})
	next := s.Update(context.Background(), Patch{SalonName: ptr.Ptr("Studio X")})

	// The in-memory state advances even though persistence failed.
	assert.Equal(t, "Studio X", next.SalonName)
	assert.Equal(t, "Studio X", s.Get().SalonName)
}

func TestUpdateReplacesCollectionsWholesale(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), nopLogger{})

	s.Update(ctx, Patch{BlockedDates: ptr.Ptr([]string{"2025-06-10", "2025-06-11"})})
	s.Update(ctx, Patch{BlockedDates: ptr.Ptr([]string{"2025-06-12"})})

	assert.Equal(t, []string{"2025-06-12"}, s.Get().BlockedDates)
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	s := New(memory.New(), nopLogger{})

	got := s.Get()
	got.Services[0].Price = 999

	assert.Equal(t, 60.0, s.Get().Services[0].Price)
}

func TestPatchNeverBindsPasswordHashFromJSON(t *testing.T) {
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"adminPasswordHash":"evil","salonName":"X"}`), &p))

	assert.Nil(t, p.AdminPasswordHash)
	require.NotNil(t, p.SalonName)
	assert.Equal(t, "X", *p.SalonName)
}
