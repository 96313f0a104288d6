package models

import (
	"time"

	"github.com/terminalstudios/booking-service/internal/domain"
)

// Request models

// GetRoomReservationsRequest is the calendar feed query
type GetRoomReservationsRequest struct {
	RoomID           domain.RoomID
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
}

// CancelReservationRequest is the admin cancellation request
type CancelReservationRequest struct {
	Reason string
}

// Response models

// ReservationResponse is the reservation DTO
type ReservationResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"roomId"`
	Start         string  `json:"start"` // RFC 3339
	End           string  `json:"end"`   // RFC 3339
	DurationHours int     `json:"durationHours"`
	Status        string  `json:"status"`
	EngineerName  string  `json:"engineerName"`
	EngineerID    string  `json:"engineerId"`
	WithEngineer  bool    `json:"withEngineer"`
	ClientName    string  `json:"clientName"`
	ClientEmail   string  `json:"clientEmail"`
	ClientPhone   string  `json:"clientPhone"`
	ProjectType   *string `json:"projectType,omitempty"`
	Message       *string `json:"message,omitempty"`
	TotalPrice    float64 `json:"totalPrice"`
	DepositPaid   float64 `json:"depositPaid"`
	PaymentID     string  `json:"paymentId"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse is a list of reservations
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// SlotResponse is one occupied interval in the public calendar feed.
// Client identity stays server-side.
type SlotResponse struct {
	RoomID        string `json:"roomId"`
	Start         string `json:"start"`
	End           string `json:"end"`
	DurationHours int    `json:"durationHours"`
}

// RoomScheduleResponse is the public calendar feed for one room
type RoomScheduleResponse struct {
	RoomID string         `json:"roomId"`
	Slots  []SlotResponse `json:"slots"`
	Total  int            `json:"total"`
}

// Conversion helpers

// FromDomainReservation converts a domain model to the DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		RoomID:             string(r.RoomID),
		Start:              r.Start.UTC().Format(time.RFC3339),
		End:                r.End.UTC().Format(time.RFC3339),
		DurationHours:      r.DurationHours,
		Status:             string(r.Status),
		EngineerName:       r.EngineerName,
		EngineerID:         r.EngineerID,
		WithEngineer:       r.WithEngineer,
		ClientName:         r.ClientName,
		ClientEmail:        r.ClientEmail,
		ClientPhone:        r.ClientPhone,
		ProjectType:        r.ProjectType,
		Message:            r.Message,
		TotalPrice:         r.TotalPrice,
		DepositPaid:        r.DepositPaid,
		PaymentID:          r.PaymentIntentID,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList converts a domain slice to the list DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out, Total: len(out)}
}

// ToRoomSchedule converts a domain slice to the public calendar feed
func ToRoomSchedule(roomID domain.RoomID, list []*domain.Reservation) *RoomScheduleResponse {
	slots := make([]SlotResponse, 0, len(list))
	for _, r := range list {
		slots = append(slots, SlotResponse{
			RoomID:        string(r.RoomID),
			Start:         r.Start.UTC().Format(time.RFC3339),
			End:           r.End.UTC().Format(time.RFC3339),
			DurationHours: r.DurationHours,
		})
	}
	return &RoomScheduleResponse{RoomID: string(roomID), Slots: slots, Total: len(slots)}
}
