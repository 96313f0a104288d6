package gohighlevel

import "errors"

var (
	// ErrNotConfigured is returned when API credentials are missing
	ErrNotConfigured = errors.New("gohighlevel client: credentials not configured")

	// ErrInternal is returned for transport failures
	ErrInternal = errors.New("gohighlevel client: internal error")

	// ErrInvalidResponse is returned when the CRM responds with an unexpected status
	ErrInvalidResponse = errors.New("gohighlevel client: invalid response")
)
