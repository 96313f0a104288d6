package reservations

import (
	"context"

	"github.com/terminalstudios/booking-service/internal/domain"
)

// ReservationRepository is the store surface the service needs
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id string, reason string) error
}

// Logger is the logging interface the service expects
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
