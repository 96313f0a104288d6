package pricing

import (
	"errors"
	"math"

	"github.com/terminalstudios/booking-service/internal/domain"
)

// ErrUnknownRoom is returned when no rate is configured for a room
var ErrUnknownRoom = errors.New("pricing: no rate configured for room")

// Rate is the hourly pricing for one room
type Rate struct {
	WithEngineer    float64
	WithoutEngineer float64
}

// Quote is the computed cost breakdown for a session. It is display data
// only and plays no part in the availability decision.
type Quote struct {
	HourlyRate float64
	Total      float64
	Deposit    float64
	Remaining  float64
}

// Table maps rooms to hourly rates
type Table struct {
	rates map[domain.RoomID]Rate
}

// NewTable creates a pricing table from static configuration
func NewTable(rates map[domain.RoomID]Rate) *Table {
	return &Table{rates: rates}
}

// Quote computes the session total and the deposit due up front
func (t *Table) Quote(roomID domain.RoomID, durationHours int, withEngineer bool) (*Quote, error) {
	rate, ok := t.rates[roomID]
	if !ok {
		return nil, ErrUnknownRoom
	}

	hourly := rate.WithoutEngineer
	if withEngineer {
		hourly = rate.WithEngineer
	}

	total := hourly * float64(durationHours)
	deposit := math.Round(total * domain.DepositRate)

	return &Quote{
		HourlyRate: hourly,
		Total:      total,
		Deposit:    deposit,
		Remaining:  total - deposit,
	}, nil
}

// Rate returns the configured hourly rates for a room
func (t *Table) Rate(roomID domain.RoomID) (Rate, bool) {
	rate, ok := t.rates[roomID]
	return rate, ok
}
