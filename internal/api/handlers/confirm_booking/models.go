package confirm_booking

import (
	"time"

	confirmBooking "github.com/terminalstudios/booking-service/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest is the HTTP request model
type ConfirmBookingRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// ConfirmBookingResponse is the HTTP response model
type ConfirmBookingResponse struct {
	ReservationID    string  `json:"reservationId"`
	RoomID           string  `json:"roomId"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
	DurationHours    int     `json:"durationHours"`
	Status           string  `json:"status"`
	EngineerName     string  `json:"engineerName"`
	WithEngineer     bool    `json:"withEngineer"`
	ClientName       string  `json:"clientName"`
	ClientEmail      string  `json:"clientEmail"`
	TotalPrice       float64 `json:"totalPrice"`
	DepositPaid      float64 `json:"depositPaid"`
	PaymentIntentID  string  `json:"paymentIntentId"`
	AlreadyConfirmed bool    `json:"alreadyConfirmed"`
}

// FromUseCaseResponse converts the use case result to the HTTP model
func FromUseCaseResponse(res *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		ReservationID:    res.ReservationID,
		RoomID:           string(res.RoomID),
		Start:            res.Start.UTC().Format(time.RFC3339),
		End:              res.End.UTC().Format(time.RFC3339),
		DurationHours:    res.DurationHours,
		Status:           string(res.Status),
		EngineerName:     res.EngineerName,
		WithEngineer:     res.WithEngineer,
		ClientName:       res.ClientName,
		ClientEmail:      res.ClientEmail,
		TotalPrice:       res.TotalPrice,
		DepositPaid:      res.DepositPaid,
		PaymentIntentID:  res.PaymentIntentID,
		AlreadyConfirmed: res.AlreadyConfirmed,
	}
}
