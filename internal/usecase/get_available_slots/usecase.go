package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/pkg/ptr"
)

// UseCase computes the per-hour availability grid for one room and day by
// running the availability engine read-only over each candidate start.
type UseCase struct {
	reservationRepo ReservationRepository
	engine          AvailabilityEngine
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(reservationRepo ReservationRepository, engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		engine:          engine,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute builds the availability grid
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: room=%s, date=%s, duration=%dh",
		req.RoomID, req.Date.Format(domain.DateFormat), req.DurationHours)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)

	// One snapshot covers every candidate start on the grid: reservations
	// overlapping [dayStart, dayEnd + duration) are the only ones any
	// candidate interval can conflict with.
	windowEnd := dayStart.Add(24*time.Hour + time.Duration(req.DurationHours)*time.Hour)
	snapshot, err := uc.reservationRepo.GetByRoomWithFilter(ctx, domain.RoomReservationsFilter{
		RoomID: req.RoomID,
		From:   ptr.Ptr(dayStart),
		To:     ptr.Ptr(windowEnd),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, 24)
	for hour := 0; hour < 24; hour++ {
		start := dayStart.Add(time.Duration(hour) * time.Hour)

		_, err := uc.engine.Evaluate(availability.Request{
			RoomID:        req.RoomID,
			Start:         start,
			DurationHours: req.DurationHours,
			WithEngineer:  req.WithEngineer,
		}, snapshot, now)

		switch {
		case err == nil:
			slots = append(slots, Slot{Start: start, StartHour: start.Format(domain.TimeFormat), Available: true})
		case errors.Is(err, availability.ErrInvalidRoom):
			uc.logger.Warn("GetAvailableSlots: unknown room %s", req.RoomID)
			return nil, ErrInvalidRoom
		case errors.Is(err, availability.ErrDurationTooShort):
			uc.logger.Warn("GetAvailableSlots: duration %dh below minimum", req.DurationHours)
			return nil, ErrDurationTooShort
		default:
			// Past, outside hours or occupied: the slot shows as busy
			slots = append(slots, Slot{Start: start, StartHour: start.Format(domain.TimeFormat), Available: false})
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for room=%s, date=%s",
		len(slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		RoomID:        req.RoomID,
		Date:          dayStart,
		DurationHours: req.DurationHours,
		Slots:         slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
