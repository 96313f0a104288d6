package create_payment_intent

import (
	"time"

	"github.com/terminalstudios/booking-service/internal/domain"
)

// Request carries everything needed to quote a session and open a deposit intent
type Request struct {
	RoomID        domain.RoomID
	Start         time.Time
	DurationHours int
	WithEngineer  bool
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ProjectType   *string
	Message       *string
}

// Response returns the Stripe client secret together with the cost breakdown
type Response struct {
	PaymentIntentID string
	ClientSecret    string
	RoomID          domain.RoomID
	RoomName        string
	Start           time.Time
	End             time.Time
	DurationHours   int
	EngineerName    string
	HourlyRate      float64
	TotalPrice      float64
	DepositDue      float64
	Remaining       float64
}
