package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
	"github.com/terminalstudios/booking-service/internal/domain"
	getAvailableSlots "github.com/terminalstudios/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid duration, expected a positive number of hours"
	msgRoomNotFound    = "room not found"
	msgDurationShort   = "session duration is below the booking minimum"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/available-slots?date=&duration=&engineer=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /rooms/%s/available-slots - Invalid date %q", roomID, query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration := domain.DefaultMinBookingHours
	if raw := query.Get("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			h.logger.Warn("GET /rooms/%s/available-slots - Invalid duration %q", roomID, raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	withEngineer := query.Get("engineer") != "false"

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		RoomID:        domain.RoomID(roomID),
		Date:          date,
		DurationHours: duration,
		WithEngineer:  withEngineer,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidRoom):
			h.logger.Warn("GET /rooms/%s/available-slots - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailableSlots.ErrDurationTooShort):
			h.logger.Warn("GET /rooms/%s/available-slots - Duration %dh too short", roomID, duration)
			handlers.RespondBadRequest(w, msgDurationShort)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/%s/available-slots - Invalid input: %v", roomID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/%s/available-slots - Failed: %v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/%s/available-slots - Returned %d slots for %s",
		roomID, len(result.Slots), query.Get("date"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
