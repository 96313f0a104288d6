package availability

import "errors"

var (
	// ErrInvalidRoom is returned when the room identifier is not in the registry
	ErrInvalidRoom = errors.New("availability: unknown room")

	// ErrDurationTooShort is returned when the requested duration is below the configured minimum
	ErrDurationTooShort = errors.New("availability: duration below minimum")

	// ErrSlotInPast is returned when the proposed start time is before now
	ErrSlotInPast = errors.New("availability: slot is in the past")

	// ErrOutsideBusinessHours is returned when the proposed interval falls outside the operating window
	ErrOutsideBusinessHours = errors.New("availability: outside business hours")

	// ErrSlotUnavailable is returned when the proposed interval overlaps an existing reservation
	ErrSlotUnavailable = errors.New("availability: slot unavailable")
)
