package confirm_booking

import (
	"time"

	"github.com/terminalstudios/booking-service/internal/domain"
)

// Request confirms the booking paid through the given intent
type Request struct {
	PaymentIntentID string
}

// Response describes the confirmed reservation
type Response struct {
	ReservationID    string
	RoomID           domain.RoomID
	Start            time.Time
	End              time.Time
	DurationHours    int
	Status           domain.ReservationStatus
	EngineerName     string
	WithEngineer     bool
	ClientName       string
	ClientEmail      string
	TotalPrice       float64
	DepositPaid      float64
	PaymentIntentID  string
	AlreadyConfirmed bool // true when the intent had been confirmed before
}

// bookingMetadata is the booking reconstructed from intent metadata
type bookingMetadata struct {
	RoomID        domain.RoomID
	RoomName      string
	Start         time.Time
	DurationHours int
	WithEngineer  bool
	EngineerName  string
	EngineerID    string
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ProjectType   string
	Message       string
	TotalAmount   float64
	DepositAmount float64
}
