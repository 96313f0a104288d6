package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
	createPaymentIntent "github.com/terminalstudios/booking-service/internal/usecase/create_payment_intent"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStart       = "invalid start, expected RFC 3339 timestamp"
	msgRoomNotFound       = "room not found"
	msgDurationShort      = "session duration is below the booking minimum"
	msgSlotInPast         = "session start is in the past"
	msgOutsideHours       = "session is outside studio working hours"
	msgSlotUnavailable    = "selected time slot is not available"
)

type Handler struct {
	useCase CreatePaymentIntentUseCase
	logger  Logger
}

func NewHandler(useCase CreatePaymentIntentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payment-intents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payment-intents - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /payment-intents - Failed to parse start %q: %v", req.Start, err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPaymentIntent.ErrInvalidInput):
			h.logger.Warn("POST /payment-intents - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createPaymentIntent.ErrInvalidRoom):
			h.logger.Warn("POST /payment-intents - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createPaymentIntent.ErrDurationTooShort):
			h.logger.Warn("POST /payment-intents - Duration too short: room=%s, duration=%dh",
				req.RoomID, req.DurationHours)
			handlers.RespondBadRequest(w, msgDurationShort)

		case errors.Is(err, createPaymentIntent.ErrSlotInPast):
			h.logger.Warn("POST /payment-intents - Slot in past: room=%s, start=%s", req.RoomID, req.Start)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createPaymentIntent.ErrOutsideBusinessHours):
			h.logger.Warn("POST /payment-intents - Outside hours: room=%s, start=%s", req.RoomID, req.Start)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createPaymentIntent.ErrSlotUnavailable):
			h.logger.Warn("POST /payment-intents - Slot unavailable: room=%s, start=%s", req.RoomID, req.Start)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /payment-intents - Failed: room=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payment-intents - Intent %s created: room=%s, deposit=%.2f",
		result.PaymentIntentID, req.RoomID, result.DepositDue)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
