package create_payment_intent

import (
	"time"

	"github.com/terminalstudios/booking-service/internal/domain"
	createPaymentIntent "github.com/terminalstudios/booking-service/internal/usecase/create_payment_intent"
)

// CreatePaymentIntentRequest is the HTTP request model
type CreatePaymentIntentRequest struct {
	RoomID        string  `json:"roomId"`
	Start         string  `json:"start"` // RFC 3339
	DurationHours int     `json:"durationHours"`
	WithEngineer  bool    `json:"withEngineer"`
	ClientName    string  `json:"clientName"`
	ClientEmail   string  `json:"clientEmail"`
	ClientPhone   string  `json:"clientPhone"`
	ProjectType   *string `json:"projectType,omitempty"`
	Message       *string `json:"message,omitempty"`
}

// PaymentIntentResponse is the HTTP response model
type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	RoomID          string  `json:"roomId"`
	RoomName        string  `json:"roomName"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationHours   int     `json:"durationHours"`
	EngineerName    string  `json:"engineerName"`
	HourlyRate      float64 `json:"hourlyRate"`
	TotalPrice      float64 `json:"totalPrice"`
	DepositDue      float64 `json:"depositDue"`
	Remaining       float64 `json:"remaining"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *CreatePaymentIntentRequest) ToUseCaseRequest() (*createPaymentIntent.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	return &createPaymentIntent.Request{
		RoomID:        domain.RoomID(r.RoomID),
		Start:         start,
		DurationHours: r.DurationHours,
		WithEngineer:  r.WithEngineer,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientPhone:   r.ClientPhone,
		ProjectType:   r.ProjectType,
		Message:       r.Message,
	}, nil
}

// FromUseCaseResponse converts the use case result to the HTTP model
func FromUseCaseResponse(res *createPaymentIntent.Response) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		PaymentIntentID: res.PaymentIntentID,
		ClientSecret:    res.ClientSecret,
		RoomID:          string(res.RoomID),
		RoomName:        res.RoomName,
		Start:           res.Start.UTC().Format(time.RFC3339),
		End:             res.End.UTC().Format(time.RFC3339),
		DurationHours:   res.DurationHours,
		EngineerName:    res.EngineerName,
		HourlyRate:      res.HourlyRate,
		TotalPrice:      res.TotalPrice,
		DepositDue:      res.DepositDue,
		Remaining:       res.Remaining,
	}
}
