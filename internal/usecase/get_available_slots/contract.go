package get_available_slots

import (
	"context"
	"time"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
)

// ReservationRepository is the store surface the use case needs
type ReservationRepository interface {
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// AvailabilityEngine is the slot decision function
type AvailabilityEngine interface {
	Evaluate(req availability.Request, existing []*domain.Reservation, now time.Time) (*availability.Result, error)
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the use case expects
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
