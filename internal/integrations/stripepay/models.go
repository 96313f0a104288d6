package stripepay

import "time"

// DepositIntentInput carries everything the payment intent needs. The whole
// booking travels in the intent metadata so the confirm flow can rebuild the
// reservation from Stripe alone.
type DepositIntentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	RoomID        string
	RoomName      string
	Start         time.Time
	DurationHours int
	WithEngineer  bool
	EngineerName  string
	EngineerID    string
	ProjectType   string
	Message       string

	TotalAmount   float64
	DepositAmount float64
}

// DepositIntent is the created payment intent handed back to the client
type DepositIntent struct {
	ID           string
	ClientSecret string
}

// Intent is a retrieved payment intent
type Intent struct {
	ID       string
	Status   string
	Metadata map[string]string
}

// Succeeded reports whether the payment completed
func (i *Intent) Succeeded() bool {
	return i.Status == "succeeded"
}
