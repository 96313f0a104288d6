package domain

// Default booking configuration values
const (
	DefaultMinBookingHours = 2
	DefaultOpenHour        = 0
	DefaultCloseHour       = 24

	// DepositRate is the fraction of the session total collected up front
	DepositRate = 0.5
)

// Engineer sentinel values for sessions booked without an engineer
const (
	NoEngineer   = "No Engineer"
	NoEngineerID = "none"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// ActiveStatuses is the set of statuses that occupy a slot.
// Used when filtering reservations for conflict checks.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
