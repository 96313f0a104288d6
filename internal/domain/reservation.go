package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a committed booking occupying a room for a
// contiguous time interval. End is exclusive: [Start, End).
type Reservation struct {
	ID            string
	RoomID        RoomID
	Start         time.Time
	End           time.Time
	DurationHours int
	Status        ReservationStatus

	EngineerName string
	EngineerID   string
	WithEngineer bool

	// Client contact info, opaque to the availability check
	ClientName  string
	ClientEmail string
	ClientPhone string
	ProjectType *string
	Message     *string

	TotalPrice      float64
	DepositPaid     float64
	PaymentIntentID string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
}

// IsActive returns true if the reservation participates in conflict checks
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// RoomReservationsFilter is the query shape the reservation store accepts
type RoomReservationsFilter struct {
	RoomID           RoomID
	From             *time.Time // start of period, inclusive (nil = unbounded)
	To               *time.Time // end of period, exclusive (nil = unbounded)
	Status           *ReservationStatus
	IncludeCancelled bool
}
