package confirm_booking

import "errors"

var (
	// ErrInvalidInput indicates a missing or malformed payment intent id
	ErrInvalidInput = errors.New("confirm_booking: invalid input")
	// ErrIntentNotFound indicates that Stripe has no such payment intent
	ErrIntentNotFound = errors.New("confirm_booking: payment intent not found")
	// ErrPaymentNotCompleted indicates the deposit has not been paid yet
	ErrPaymentNotCompleted = errors.New("confirm_booking: payment not completed")
	// ErrInvalidMetadata indicates intent metadata that does not describe a booking
	ErrInvalidMetadata = errors.New("confirm_booking: invalid intent metadata")
	// ErrSlotUnavailable indicates the slot was taken between payment and confirmation
	ErrSlotUnavailable = errors.New("confirm_booking: slot no longer available")
	// ErrInternal indicates an unexpected storage or payments failure
	ErrInternal = errors.New("confirm_booking: internal error")
)
