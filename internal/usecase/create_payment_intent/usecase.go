package create_payment_intent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/integrations/stripepay"
	"github.com/terminalstudios/booking-service/pkg/ptr"
)

// UseCase quotes a session and opens a Stripe deposit intent for it.
// The slot is checked against the current schedule before any money touches
// Stripe; the binding check happens again at confirmation time inside a
// transaction, so a race here only wastes an intent, never double-books.
type UseCase struct {
	reservationRepo ReservationRepository
	engine          AvailabilityEngine
	pricing         PricingTable
	registry        *domain.Registry
	stripeClient    StripeClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	reservationRepo ReservationRepository,
	engine AvailabilityEngine,
	pricingTable PricingTable,
	registry *domain.Registry,
	stripeClient StripeClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		engine:          engine,
		pricing:         pricingTable,
		registry:        registry,
		stripeClient:    stripeClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute validates the slot, prices the session and creates the deposit intent
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentIntent: room=%s, start=%s, duration=%dh, withEngineer=%t",
		req.RoomID, req.Start.Format(time.RFC3339), req.DurationHours, req.WithEngineer)

	// Step 1: input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePaymentIntent: validation failed: %v", err)
		return nil, err
	}

	// Step 2: slot check against the current schedule
	end := req.Start.Add(time.Duration(req.DurationHours) * time.Hour)
	snapshot, err := uc.reservationRepo.GetByRoomWithFilter(ctx, domain.RoomReservationsFilter{
		RoomID: req.RoomID,
		From:   ptr.Ptr(req.Start),
		To:     ptr.Ptr(end),
	})
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	result, err := uc.engine.Evaluate(availability.Request{
		RoomID:        req.RoomID,
		Start:         req.Start,
		DurationHours: req.DurationHours,
		WithEngineer:  req.WithEngineer,
	}, snapshot, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreatePaymentIntent: slot rejected: %v", err)
		return nil, mapAvailabilityError(err)
	}

	// Step 3: price the session
	room, _ := uc.registry.Get(req.RoomID)
	quote, err := uc.pricing.Quote(req.RoomID, req.DurationHours, req.WithEngineer)
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: failed to quote session: %v", err)
		return nil, fmt.Errorf("%w: failed to quote session: %v", ErrInternal, err)
	}

	// Step 4: open the deposit intent, the whole booking rides in its metadata
	intent, err := uc.stripeClient.CreateDepositIntent(ctx, stripepay.DepositIntentInput{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		RoomID:        string(req.RoomID),
		RoomName:      room.DisplayName,
		Start:         req.Start,
		DurationHours: req.DurationHours,
		WithEngineer:  req.WithEngineer,
		EngineerName:  result.EngineerName,
		EngineerID:    result.EngineerID,
		ProjectType:   derefOrEmpty(req.ProjectType),
		Message:       derefOrEmpty(req.Message),
		TotalAmount:   quote.Total,
		DepositAmount: quote.Deposit,
	})
	if err != nil {
		uc.logger.Error("CreatePaymentIntent: stripe intent creation failed: %v", err)
		return nil, fmt.Errorf("%w: stripe intent creation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePaymentIntent: intent %s created, deposit=%.2f of %.2f",
		intent.ID, quote.Deposit, quote.Total)

	return &Response{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		RoomID:          req.RoomID,
		RoomName:        room.DisplayName,
		Start:           req.Start,
		End:             result.End,
		DurationHours:   req.DurationHours,
		EngineerName:    result.EngineerName,
		HourlyRate:      quote.HourlyRate,
		TotalPrice:      quote.Total,
		DepositDue:      quote.Deposit,
		Remaining:       quote.Remaining,
	}, nil
}

func mapAvailabilityError(err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidRoom):
		return ErrInvalidRoom
	case errors.Is(err, availability.ErrDurationTooShort):
		return ErrDurationTooShort
	case errors.Is(err, availability.ErrSlotInPast):
		return ErrSlotInPast
	case errors.Is(err, availability.ErrOutsideBusinessHours):
		return ErrOutsideBusinessHours
	case errors.Is(err, availability.ErrSlotUnavailable):
		return ErrSlotUnavailable
	default:
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
