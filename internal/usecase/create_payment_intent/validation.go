package create_payment_intent

import (
	"fmt"
	"strings"
)

func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if !strings.Contains(req.ClientEmail, "@") {
		return fmt.Errorf("%w: client email is invalid", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}
	return nil
}
