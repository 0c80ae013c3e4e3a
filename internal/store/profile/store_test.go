package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendei-app/agendei-service/internal/infra/storage"
	"github.com/agendei-app/agendei-service/internal/infra/storage/memory"
	"github.com/agendei-app/agendei-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestGetMissingReadsEmpty(t *testing.T) {
	s := New(memory.New(), nopLogger{})

	p := s.Get(context.Background(), "sess")
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Phone)
}

func TestGetMalformedReadsEmpty(t *testing.T) {
	mem := memory.New()
	mem.Seed(storage.KeyProfilePrefix+"sess", []byte(`{broken`))

	s := New(mem, nopLogger{})
	assert.Empty(t, s.Get(context.Background(), "sess").Name)
}

func TestUpdateMergesAndPersists(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	s := New(mem, nopLogger{})

	s.Update(ctx, "sess", Patch{Name: ptr.Ptr("Maria"), Phone: ptr.Ptr("5511987654321")})
	updated := s.Update(ctx, "sess", Patch{Email: ptr.Ptr("maria@example.com")})

	assert.Equal(t, "Maria", updated.Name)
	assert.Equal(t, "5511987654321", updated.Phone)
	assert.Equal(t, "maria@example.com", updated.Email)

	// A fresh store over the same backend sees the record.
	reloaded := New(mem, nopLogger{}).Get(ctx, "sess")
	assert.Equal(t, "Maria", reloaded.Name)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), nopLogger{})

	s.Update(ctx, "a", Patch{Name: ptr.Ptr("Maria")})
	s.Update(ctx, "b", Patch{Name: ptr.Ptr("João")})

	assert.Equal(t, "Maria", s.Get(ctx, "a").Name)
	assert.Equal(t, "João", s.Get(ctx, "b").Name)
}

func TestClearPhoto(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), nopLogger{})

	s.Update(ctx, "sess", Patch{Name: ptr.Ptr("Maria"), PhotoURL: ptr.Ptr("data:image/png;base64,xxx")})
	p := s.ClearPhoto(ctx, "sess")

	assert.Empty(t, p.PhotoURL)
	assert.Equal(t, "Maria", p.Name)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), nopLogger{})

	s.Update(ctx, "sess", Patch{Name: ptr.Ptr("Maria")})
	s.Reset(ctx, "sess")

	p := s.Get(ctx, "sess")
	require.Empty(t, p.Name)
}
