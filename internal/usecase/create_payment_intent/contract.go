package create_payment_intent

import (
	"context"
	"time"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/integrations/stripepay"
	"github.com/terminalstudios/booking-service/internal/pricing"
)

// ReservationRepository is the store surface the use case needs
type ReservationRepository interface {
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// AvailabilityEngine is the slot decision function
type AvailabilityEngine interface {
	Evaluate(req availability.Request, existing []*domain.Reservation, now time.Time) (*availability.Result, error)
}

// PricingTable computes the session cost breakdown
type PricingTable interface {
	Quote(roomID domain.RoomID, durationHours int, withEngineer bool) (*pricing.Quote, error)
}

// StripeClient creates deposit payment intents
type StripeClient interface {
	CreateDepositIntent(ctx context.Context, in stripepay.DepositIntentInput) (*stripepay.DepositIntent, error)
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
