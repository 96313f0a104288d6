package create_payment_intent

import "errors"

var (
	// ErrInvalidInput indicates that required request fields are missing or malformed
	ErrInvalidInput = errors.New("create_payment_intent: invalid input")
	// ErrInvalidRoom indicates that the requested room does not exist
	ErrInvalidRoom = errors.New("create_payment_intent: invalid room")
	// ErrDurationTooShort indicates a session shorter than the booking minimum
	ErrDurationTooShort = errors.New("create_payment_intent: duration too short")
	// ErrSlotInPast indicates a start time that has already passed
	ErrSlotInPast = errors.New("create_payment_intent: slot in past")
	// ErrOutsideBusinessHours indicates a session outside the studio working window
	ErrOutsideBusinessHours = errors.New("create_payment_intent: outside business hours")
	// ErrSlotUnavailable indicates the slot conflicts with an existing reservation
	ErrSlotUnavailable = errors.New("create_payment_intent: slot unavailable")
	// ErrInternal indicates an unexpected failure in storage or payments
	ErrInternal = errors.New("create_payment_intent: internal error")
)
