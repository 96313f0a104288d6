package cancel_reservation

// CancelReservationRequest is the HTTP request model
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}
