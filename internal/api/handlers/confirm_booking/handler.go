package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
	confirmBooking "github.com/terminalstudios/booking-service/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgIntentNotFound      = "payment intent not found"
	msgPaymentNotCompleted = "deposit payment has not completed"
	msgInvalidMetadata     = "payment intent does not describe a booking"
	msgSlotUnavailable     = "time slot is no longer available, the deposit will be refunded"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, confirmBooking.ErrIntentNotFound):
			h.logger.Warn("POST /bookings/confirm - Intent not found: intent=%s", req.PaymentIntentID)
			handlers.RespondNotFound(w, msgIntentNotFound)

		case errors.Is(err, confirmBooking.ErrPaymentNotCompleted):
			h.logger.Warn("POST /bookings/confirm - Payment not completed: intent=%s", req.PaymentIntentID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentNotCompleted)

		case errors.Is(err, confirmBooking.ErrInvalidMetadata):
			h.logger.Error("POST /bookings/confirm - Bad metadata: intent=%s, error=%v", req.PaymentIntentID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidMetadata)

		case errors.Is(err, confirmBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings/confirm - Slot taken: intent=%s", req.PaymentIntentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /bookings/confirm - Failed: intent=%s, error=%v", req.PaymentIntentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyConfirmed {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings/confirm - Reservation %s confirmed: intent=%s, alreadyConfirmed=%t",
		result.ReservationID, req.PaymentIntentID, result.AlreadyConfirmed)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
