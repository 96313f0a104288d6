package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrCannotCancel is returned when the reservation is already cancelled
	ErrCannotCancel = errors.New("reservations: reservation cannot be cancelled")

	// ErrInvalidRoom is returned for unknown room identifiers
	ErrInvalidRoom = errors.New("reservations: unknown room")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal is returned for repository failures
	ErrInternal = errors.New("reservations: internal error")
)
