package get_available_slots

import "errors"

var (
	// ErrInvalidRoom is returned when the room identifier is unknown
	ErrInvalidRoom = errors.New("get_available_slots: unknown room")

	// ErrDurationTooShort is returned when the duration is below the minimum
	ErrDurationTooShort = errors.New("get_available_slots: duration below minimum")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
