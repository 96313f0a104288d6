package list_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/service/reservations"
	"github.com/terminalstudios/booking-service/internal/service/reservations/models"
)

type fakeService struct {
	gotReq *models.GetRoomReservationsRequest
	result *models.ReservationListResponse
	err    error
}

func (f *fakeService) GetRoomReservations(_ context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error) {
	f.gotReq = req
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ListsWithFullDetails(t *testing.T) {
	svc := &fakeService{
		result: &models.ReservationListResponse{
			Reservations: []models.ReservationResponse{
				{ID: "res-1", RoomID: "terminal-a", ClientName: "Dana Reyes", Status: "cancelled"},
			},
			Total: 1,
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := get(t, h, "/api/v1/reservations?roomId=terminal-a&includeCancelled=true")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReservationListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Dana Reyes", resp.Reservations[0].ClientName)

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, domain.RoomID("terminal-a"), svc.gotReq.RoomID)
	assert.True(t, svc.gotReq.IncludeCancelled)
}

func TestHandle_ParsesPeriod(t *testing.T) {
	svc := &fakeService{result: &models.ReservationListResponse{}}
	h := NewHandler(svc, nopLogger{})

	rec := get(t, h, "/api/v1/reservations?roomId=terminal-a&from=2024-03-01T00:00:00Z&to=2024-03-08T00:00:00Z")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotReq.From)
	require.NotNil(t, svc.gotReq.To)
	assert.Equal(t, "2024-03-01T00:00:00Z", svc.gotReq.From.Format("2006-01-02T15:04:05Z07:00"))
}

func TestHandle_MissingRoomID(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	rec := get(t, h, "/api/v1/reservations")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadPeriod(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	rec := get(t, h, "/api/v1/reservations?roomId=terminal-a&from=yesterday")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownRoom(t *testing.T) {
	h := NewHandler(&fakeService{err: reservations.ErrInvalidRoom}, nopLogger{})

	rec := get(t, h, "/api/v1/reservations?roomId=garage")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
