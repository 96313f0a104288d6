package create_payment_intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
	"github.com/terminalstudios/booking-service/internal/domain"
	createPaymentIntent "github.com/terminalstudios/booking-service/internal/usecase/create_payment_intent"
)

type fakeUseCase struct {
	gotReq *createPaymentIntent.Request
	result *createPaymentIntent.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createPaymentIntent.Request) (*createPaymentIntent.Response, error) {
	f.gotReq = req
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"roomId": "terminal-a",
	"start": "2024-03-02T14:00:00Z",
	"durationHours": 2,
	"withEngineer": true,
	"clientName": "Dana Reyes",
	"clientEmail": "dana@example.com",
	"clientPhone": "+15550100"
}`

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment-intents", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		result: &createPaymentIntent.Response{
			PaymentIntentID: "pi_test",
			ClientSecret:    "pi_test_secret",
			RoomID:          domain.RoomTerminalA,
			RoomName:        "Terminal A",
			Start:           time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC),
			End:             time.Date(2024, 3, 2, 16, 0, 0, 0, time.UTC),
			DurationHours:   2,
			EngineerName:    "Murda",
			HourlyRate:      80,
			TotalPrice:      160,
			DepositDue:      80,
			Remaining:       80,
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := post(t, h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp PaymentIntentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pi_test_secret", resp.ClientSecret)
	assert.Equal(t, "2024-03-02T16:00:00Z", resp.End)
	assert.Equal(t, 80.0, resp.DepositDue)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, domain.RoomTerminalA, uc.gotReq.RoomID)
	assert.Equal(t, time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC), uc.gotReq.Start)
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := post(t, h, `{"roomId": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadStart(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := post(t, h, strings.Replace(validBody, "2024-03-02T14:00:00Z", "tomorrow", 1))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid room", createPaymentIntent.ErrInvalidRoom, http.StatusNotFound},
		{"duration too short", createPaymentIntent.ErrDurationTooShort, http.StatusBadRequest},
		{"slot in past", createPaymentIntent.ErrSlotInPast, http.StatusBadRequest},
		{"outside hours", createPaymentIntent.ErrOutsideBusinessHours, http.StatusBadRequest},
		{"slot taken", createPaymentIntent.ErrSlotUnavailable, http.StatusConflict},
		{"internal", createPaymentIntent.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := post(t, h, validBody)

			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
