package get_agenda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAgenda "github.com/agendei-app/agendei-service/internal/usecase/get_agenda"
)

type useCaseFake struct {
	gotReq *getAgenda.Request
	resp   *getAgenda.Response
	err    error
}

func (f *useCaseFake) Execute(_ context.Context, req *getAgenda.Request) (*getAgenda.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandleReturnsAgenda(t *testing.T) {
	fake := &useCaseFake{resp: &getAgenda.Response{
		DateISO: "2025-06-10",
		Days:    []getAgenda.Day{{DateISO: "2025-06-10"}},
		Slots:   []getAgenda.Slot{{Hour: 9, Disabled: true, Reason: "past"}, {Hour: 11}},
	}}
	h := NewHandler(fake, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AgendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-10", body.Date)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "past", body.Slots[0].Reason)
	assert.False(t, body.Slots[1].Disabled)

	// No date parameter means "today".
	assert.Nil(t, fake.gotReq.Date)
}

func TestHandleParsesDateParameter(t *testing.T) {
	fake := &useCaseFake{resp: &getAgenda.Response{DateISO: "2025-06-12"}}
	h := NewHandler(fake, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2025-06-12", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, fake.gotReq.Date)
	assert.Equal(t, "2025-06-12", fake.gotReq.Date.Format("2006-01-02"))
}

func TestHandleRejectsMalformedDate(t *testing.T) {
	h := NewHandler(&useCaseFake{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=12-06-2025", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMapsWindowError(t *testing.T) {
	h := NewHandler(&useCaseFake{err: getAgenda.ErrDateOutsideWindow}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2025-06-10", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMapsUnknownErrorTo500(t *testing.T) {
	h := NewHandler(&useCaseFake{err: errors.New("boom")}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/agenda", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
