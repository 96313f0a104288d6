package get_room_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/service/reservations"
	"github.com/terminalstudios/booking-service/internal/service/reservations/models"
)

const (
	msgInvalidFrom  = "invalid from, expected RFC 3339 timestamp"
	msgInvalidTo    = "invalid to, expected RFC 3339 timestamp"
	msgRoomNotFound = "room not found"
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

// Handle GET /api/v1/rooms/{roomId}/reservations?from=&to=
// Public calendar feed: confirmed sessions only, no client identity.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	query := r.URL.Query()

	req := &models.GetRoomReservationsRequest{RoomID: domain.RoomID(roomID)}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /rooms/%s/reservations - Invalid from %q", roomID, raw)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /rooms/%s/reservations - Invalid to %q", roomID, raw)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.To = &to
	}

	result, err := h.service.GetRoomSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidRoom):
			h.logger.Warn("GET /rooms/%s/reservations - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/%s/reservations - Failed: %v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/%s/reservations - Returned %d occupied slots", roomID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
