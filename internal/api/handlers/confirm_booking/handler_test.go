package confirm_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendei-app/agendei-service/internal/domain"
	confirmBooking "github.com/agendei-app/agendei-service/internal/usecase/confirm_booking"
)

type useCaseFake struct {
	gotReq *confirmBooking.Request
	resp   *confirmBooking.Response
	err    error
}

func (f *useCaseFake) Execute(_ context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"date": "2025-06-11",
	"hour": 9,
	"customerName": "Maria Silva",
	"customerEmail": "maria@example.com",
	"customerPhone": "5511987654321"
}`

func TestHandleCreatesBooking(t *testing.T) {
	fake := &useCaseFake{resp: &confirmBooking.Response{
		Appointment: domain.Appointment{
			ID: "appt-1", DateISO: "2025-06-11", Hour: 9, Total: 150,
			Items: []domain.CartLine{
				{ServiceItem: domain.ServiceItem{ID: "barba", Name: "Barba", Price: 30}, Qty: 1},
			},
		},
		WhatsAppLink: "https://api.whatsapp.com/send?phone=5599999999999&text=x",
	}}
	h := NewHandler(fake, nopLogger{})

	rec := postBooking(t, h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "appt-1", body.ID)
	assert.Equal(t, 150.0, body.Total)
	assert.NotEmpty(t, body.WhatsAppLink)

	require.NotNil(t, fake.gotReq)
	assert.Equal(t, "2025-06-11", fake.gotReq.Date.Format(domain.DateFormat))
	assert.Equal(t, 9, fake.gotReq.Hour)
}

func TestHandleRejectsMalformedBody(t *testing.T) {
	h := NewHandler(&useCaseFake{}, nopLogger{})

	rec := postBooking(t, h, `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRejectsMalformedDate(t *testing.T) {
	h := NewHandler(&useCaseFake{}, nopLogger{})

	rec := postBooking(t, h, `{"date":"11/06/2025","hour":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid name", confirmBooking.ErrInvalidName, http.StatusBadRequest},
		{"invalid email", confirmBooking.ErrInvalidEmail, http.StatusBadRequest},
		{"invalid phone", confirmBooking.ErrInvalidPhone, http.StatusBadRequest},
		{"empty cart", confirmBooking.ErrEmptyCart, http.StatusBadRequest},
		{"outside window", confirmBooking.ErrDateOutsideWindow, http.StatusBadRequest},
		{"slot occupied", confirmBooking.ErrSlotOccupied, http.StatusConflict},
		{"slot unavailable", confirmBooking.ErrSlotUnavailable, http.StatusConflict},
		{"phone not configured", confirmBooking.ErrPhoneNotConfigured, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseFake{err: tt.err}, nopLogger{})

			rec := postBooking(t, h, validBody)
			assert.Equal(t, tt.wantCode, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
