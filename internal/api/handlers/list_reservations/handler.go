package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/service/reservations"
	"github.com/terminalstudios/booking-service/internal/service/reservations/models"
)

const (
	msgMissingRoomID = "roomId is required"
	msgInvalidFrom   = "invalid from, expected RFC 3339 timestamp"
	msgInvalidTo     = "invalid to, expected RFC 3339 timestamp"
	msgRoomNotFound  = "room not found"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?roomId=&from=&to=&includeCancelled=
// Admin listing with full client details.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID := query.Get("roomId")
	if roomID == "" {
		h.logger.Warn("GET /reservations - Missing roomId")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	req := &models.GetRoomReservationsRequest{
		RoomID:           domain.RoomID(roomID),
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid from %q", raw)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid to %q", raw)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.To = &to
	}

	result, err := h.service.GetRoomReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidRoom):
			h.logger.Warn("GET /reservations - Room not found: room=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /reservations - Failed: room=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Returned %d reservations for room=%s", result.Total, roomID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
