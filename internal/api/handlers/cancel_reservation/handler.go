package cancel_reservation

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
	"github.com/terminalstudios/booking-service/internal/service/reservations"
	"github.com/terminalstudios/booking-service/internal/service/reservations/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgReservationNotFound = "reservation not found"
	msgAlreadyCancelled    = "reservation is already cancelled"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	// The body is optional, cancellation works without a reason
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /reservations/%s/cancel - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.Cancel(r.Context(), reservationID, &models.CancelReservationRequest{Reason: req.Reason})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%s/cancel - Not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/%s/cancel - Already cancelled", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /reservations/%s/cancel - Failed: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		h.logger.Error("PATCH /reservations/%s/cancel - Cancelled but failed to reload: %v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /reservations/%s/cancel - Reservation cancelled", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
