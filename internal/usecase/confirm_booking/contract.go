package confirm_booking

import (
	"context"
	"time"

	"github.com/terminalstudios/booking-service/internal/availability"
	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/integrations/formspree"
	"github.com/terminalstudios/booking-service/internal/integrations/gohighlevel"
	"github.com/terminalstudios/booking-service/internal/integrations/stripepay"
)

// ReservationRepository is the store surface the use case needs
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Reservation, error)
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// AvailabilityEngine re-checks the slot before the reservation is written
type AvailabilityEngine interface {
	Evaluate(req availability.Request, existing []*domain.Reservation, now time.Time) (*availability.Result, error)
}

// StripeClient retrieves payment intents
type StripeClient interface {
	GetIntent(ctx context.Context, id string) (*stripepay.Intent, error)
}

// TxManager runs the slot re-check and insert atomically
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CRMClient pushes confirmed bookings to the CRM, best effort
type CRMClient interface {
	UpsertBookingContact(ctx context.Context, contact gohighlevel.BookingContact) error
}

// Notifier sends the staff booking notification, best effort
type Notifier interface {
	NotifyBooking(ctx context.Context, n formspree.BookingNotification) error
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
