package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
	reservationRepo "github.com/terminalstudios/booking-service/internal/infra/storage/reservation"
	"github.com/terminalstudios/booking-service/internal/integrations/formspree"
	"github.com/terminalstudios/booking-service/internal/integrations/gohighlevel"
	"github.com/terminalstudios/booking-service/internal/integrations/stripepay"
	"github.com/terminalstudios/booking-service/pkg/ptr"
)

// UseCase turns a paid deposit intent into a confirmed reservation.
// The booking is rebuilt from the intent metadata, so the confirm call needs
// nothing but the intent id. The slot check and the insert run inside one
// SERIALIZABLE transaction with the overlapping rows locked, which closes the
// window between payment and confirmation.
type UseCase struct {
	reservationRepo ReservationRepository
	engine          AvailabilityEngine
	stripeClient    StripeClient
	txManager       TxManager
	crmClient       CRMClient
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	repo ReservationRepository,
	engine AvailabilityEngine,
	stripeClient StripeClient,
	txManager TxManager,
	crmClient CRMClient,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: repo,
		engine:          engine,
		stripeClient:    stripeClient,
		txManager:       txManager,
		crmClient:       crmClient,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute confirms the booking behind the given payment intent
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: intent=%s", req.PaymentIntentID)

	// Step 1: input validation
	if strings.TrimSpace(req.PaymentIntentID) == "" {
		return nil, fmt.Errorf("%w: paymentIntentId is required", ErrInvalidInput)
	}

	// Step 2: idempotency, a confirmed intent returns its reservation as-is
	if existing, err := uc.reservationRepo.GetByPaymentIntent(ctx, req.PaymentIntentID); err == nil {
		uc.logger.Info("ConfirmBooking: intent %s already confirmed as reservation %s",
			req.PaymentIntentID, existing.ID)
		return responseFrom(existing, true), nil
	} else if !errors.Is(err, reservationRepo.ErrReservationNotFound) {
		uc.logger.Error("ConfirmBooking: idempotency lookup failed: %v", err)
		return nil, fmt.Errorf("%w: idempotency lookup failed: %v", ErrInternal, err)
	}

	// Step 3: fetch the intent and require a completed payment
	intent, err := uc.stripeClient.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		if errors.Is(err, stripepay.ErrIntentNotFound) {
			uc.logger.Warn("ConfirmBooking: intent %s not found", req.PaymentIntentID)
			return nil, ErrIntentNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to fetch intent: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch intent: %v", ErrInternal, err)
	}
	if !intent.Succeeded() {
		uc.logger.Warn("ConfirmBooking: intent %s has status %s", intent.ID, intent.Status)
		return nil, fmt.Errorf("%w: intent status is %s", ErrPaymentNotCompleted, intent.Status)
	}

	// Step 4: rebuild the booking from intent metadata
	meta, err := parseMetadata(intent.Metadata)
	if err != nil {
		uc.logger.Error("ConfirmBooking: bad metadata on intent %s: %v", intent.ID, err)
		return nil, err
	}

	// Step 5: re-check the slot and insert, atomically
	var created *domain.Reservation
	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		end := meta.Start.Add(time.Duration(meta.DurationHours) * time.Hour)
		snapshot, err := uc.reservationRepo.GetByRoomWithFilter(txCtx, domain.RoomReservationsFilter{
			RoomID: meta.RoomID,
			From:   ptr.Ptr(meta.Start),
			To:     ptr.Ptr(end),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
		}

		if _, err := uc.engine.Evaluate(availability.Request{
			RoomID:        meta.RoomID,
			Start:         meta.Start,
			DurationHours: meta.DurationHours,
			WithEngineer:  meta.WithEngineer,
		}, snapshot, uc.timeProvider.Now()); err != nil {
			return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
		}

		created, err = uc.reservationRepo.Create(txCtx, uc.reservationFrom(meta, intent.ID))
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDuplicatePaymentIntent) {
				return err
			}
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		// A concurrent confirm of the same intent wins the unique index race
		if errors.Is(txErr, reservationRepo.ErrDuplicatePaymentIntent) {
			if existing, err := uc.reservationRepo.GetByPaymentIntent(ctx, req.PaymentIntentID); err == nil {
				return responseFrom(existing, true), nil
			}
		}
		uc.logger.Error("ConfirmBooking: transaction failed: %v", txErr)
		return nil, txErr
	}

	uc.logger.Info("ConfirmBooking: reservation %s confirmed for room=%s, start=%s",
		created.ID, created.RoomID, created.Start.Format(time.RFC3339))

	// Step 6: side channels after commit, failures never undo the booking
	uc.pushToCRM(ctx, created, meta)
	uc.notifyStaff(ctx, created, meta)

	return responseFrom(created, false), nil
}

func (uc *UseCase) reservationFrom(meta *bookingMetadata, intentID string) *domain.Reservation {
	res := &domain.Reservation{
		RoomID:          meta.RoomID,
		Start:           meta.Start,
		End:             meta.Start.Add(time.Duration(meta.DurationHours) * time.Hour),
		DurationHours:   meta.DurationHours,
		Status:          domain.StatusConfirmed,
		EngineerName:    meta.EngineerName,
		EngineerID:      meta.EngineerID,
		WithEngineer:    meta.WithEngineer,
		ClientName:      meta.ClientName,
		ClientEmail:     meta.ClientEmail,
		ClientPhone:     meta.ClientPhone,
		TotalPrice:      meta.TotalAmount,
		DepositPaid:     meta.DepositAmount,
		PaymentIntentID: intentID,
	}
	if meta.ProjectType != "" {
		res.ProjectType = ptr.Ptr(meta.ProjectType)
	}
	if meta.Message != "" {
		res.Message = ptr.Ptr(meta.Message)
	}
	return res
}

func (uc *UseCase) pushToCRM(ctx context.Context, res *domain.Reservation, meta *bookingMetadata) {
	first, last := splitName(res.ClientName)
	err := uc.crmClient.UpsertBookingContact(ctx, gohighlevel.BookingContact{
		FirstName:     first,
		LastName:      last,
		Email:         res.ClientEmail,
		Phone:         res.ClientPhone,
		RoomID:        string(res.RoomID),
		RoomName:      meta.RoomName,
		EngineerName:  res.EngineerName,
		BookingDate:   res.Start.Format(domain.DateFormat),
		BookingTime:   res.Start.Format(domain.TimeFormat),
		DurationHours: res.DurationHours,
		TotalPrice:    res.TotalPrice,
		DepositPaid:   res.DepositPaid,
		Remaining:     res.TotalPrice - res.DepositPaid,
		PaymentID:     res.PaymentIntentID,
		ProjectType:   meta.ProjectType,
		Message:       meta.Message,
	})
	switch {
	case err == nil:
		uc.logger.Info("ConfirmBooking: CRM contact upserted for reservation %s", res.ID)
	case errors.Is(err, gohighlevel.ErrNotConfigured):
		uc.logger.Info("ConfirmBooking: CRM disabled, skipping contact upsert")
	default:
		uc.logger.Error("ConfirmBooking: CRM upsert failed for reservation %s: %v", res.ID, err)
	}
}

func (uc *UseCase) notifyStaff(ctx context.Context, res *domain.Reservation, meta *bookingMetadata) {
	err := uc.notifier.NotifyBooking(ctx, formspree.BookingNotification{
		ClientName:  res.ClientName,
		ClientEmail: res.ClientEmail,
		ClientPhone: res.ClientPhone,
		Room:        meta.RoomName,
		Engineer:    res.EngineerName,
		Start:       res.Start.Format(time.RFC3339),
		Duration:    fmt.Sprintf("%d hours", res.DurationHours),
		TotalPrice:  res.TotalPrice,
		DepositPaid: res.DepositPaid,
		PaymentID:   res.PaymentIntentID,
		Message:     meta.Message,
	})
	switch {
	case err == nil:
		uc.logger.Info("ConfirmBooking: staff notified about reservation %s", res.ID)
	case errors.Is(err, formspree.ErrNotConfigured):
		uc.logger.Info("ConfirmBooking: notifications disabled, skipping")
	default:
		uc.logger.Error("ConfirmBooking: staff notification failed for reservation %s: %v", res.ID, err)
	}
}

func parseMetadata(md map[string]string) (*bookingMetadata, error) {
	if md["type"] != "studio_booking_deposit" {
		return nil, fmt.Errorf("%w: unexpected intent type %q", ErrInvalidMetadata, md["type"])
	}

	start, err := time.Parse(time.RFC3339, md["bookingStart"])
	if err != nil {
		return nil, fmt.Errorf("%w: bad bookingStart %q", ErrInvalidMetadata, md["bookingStart"])
	}
	duration, err := strconv.Atoi(md["durationHours"])
	if err != nil || duration <= 0 {
		return nil, fmt.Errorf("%w: bad durationHours %q", ErrInvalidMetadata, md["durationHours"])
	}
	total, err := strconv.ParseFloat(md["totalAmount"], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad totalAmount %q", ErrInvalidMetadata, md["totalAmount"])
	}
	deposit, err := strconv.ParseFloat(md["depositAmount"], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad depositAmount %q", ErrInvalidMetadata, md["depositAmount"])
	}
	if md["studio"] == "" {
		return nil, fmt.Errorf("%w: studio is missing", ErrInvalidMetadata)
	}

	return &bookingMetadata{
		RoomID:        domain.RoomID(md["studio"]),
		RoomName:      md["studioName"],
		Start:         start,
		DurationHours: duration,
		WithEngineer:  md["withEngineer"] == "yes",
		EngineerName:  md["engineerName"],
		EngineerID:    md["engineerId"],
		ClientName:    md["customerName"],
		ClientEmail:   md["customerEmail"],
		ClientPhone:   md["customerPhone"],
		ProjectType:   md["projectType"],
		Message:       md["message"],
		TotalAmount:   total,
		DepositAmount: deposit,
	}, nil
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func responseFrom(res *domain.Reservation, alreadyConfirmed bool) *Response {
	return &Response{
		ReservationID:    res.ID,
		RoomID:           res.RoomID,
		Start:            res.Start,
		End:              res.End,
		DurationHours:    res.DurationHours,
		Status:           res.Status,
		EngineerName:     res.EngineerName,
		WithEngineer:     res.WithEngineer,
		ClientName:       res.ClientName,
		ClientEmail:      res.ClientEmail,
		TotalPrice:       res.TotalPrice,
		DepositPaid:      res.DepositPaid,
		PaymentIntentID:  res.PaymentIntentID,
		AlreadyConfirmed: alreadyConfirmed,
	}
}
