package stripepay

import "errors"

var (
	// ErrIntentNotFound is returned when Stripe has no payment intent for the id
	ErrIntentNotFound = errors.New("stripepay client: payment intent not found")

	// ErrInternal is returned for transport or API failures
	ErrInternal = errors.New("stripepay client: internal error")
)
