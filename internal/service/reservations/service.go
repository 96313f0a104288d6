package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/terminalstudios/booking-service/internal/domain"
	reservationRepo "github.com/terminalstudios/booking-service/internal/infra/storage/reservation"
	"github.com/terminalstudios/booking-service/internal/service/reservations/models"
)

// Service handles reservation reads and cancellation
type Service struct {
	repo     ReservationRepository
	registry *domain.Registry
	logger   Logger
}

// NewService creates a reservations service
func NewService(repo ReservationRepository, registry *domain.Registry, logger Logger) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		logger:   logger,
	}
}

// GetByID fetches one reservation with full client details (admin surface)
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetRoomSchedule returns the occupied intervals for calendar rendering.
// Only confirmed reservations appear in the public feed.
func (s *Service) GetRoomSchedule(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.RoomScheduleResponse, error) {
	s.logger.Info("GetRoomSchedule: room=%s, from=%v, to=%v", req.RoomID, req.From, req.To)

	if !s.registry.Contains(req.RoomID) {
		s.logger.Warn("GetRoomSchedule: unknown room %s", req.RoomID)
		return nil, ErrInvalidRoom
	}

	confirmed := domain.StatusConfirmed
	filter := domain.RoomReservationsFilter{
		RoomID: req.RoomID,
		From:   req.From,
		To:     req.To,
		Status: &confirmed,
	}

	list, err := s.repo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomSchedule: repository error for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomSchedule: %d reservations for room=%s", len(list), req.RoomID)
	return models.ToRoomSchedule(req.RoomID, list), nil
}

// GetRoomReservations returns full reservations for a room (admin surface)
func (s *Service) GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRoomReservations: room=%s, from=%v, to=%v, includeCancelled=%t",
		req.RoomID, req.From, req.To, req.IncludeCancelled)

	if !s.registry.Contains(req.RoomID) {
		s.logger.Warn("GetRoomReservations: unknown room %s", req.RoomID)
		return nil, ErrInvalidRoom
	}

	filter := domain.RoomReservationsFilter{
		RoomID:           req.RoomID,
		From:             req.From,
		To:               req.To,
		IncludeCancelled: req.IncludeCancelled,
	}

	list, err := s.repo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomReservations: repository error for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(list), nil
}

// Cancel marks a reservation cancelled. Cancellation frees the slot for new
// bookings; the deposit refund, if any, is handled out of band.
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%s", id)

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.repo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return nil
}
