package get_available_slots

import (
	"time"

	"github.com/terminalstudios/booking-service/internal/domain"
	getAvailableSlots "github.com/terminalstudios/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one candidate start hour on the grid
type SlotResponse struct {
	Start     string `json:"start"` // RFC 3339
	StartHour string `json:"startHour"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse is the per-hour grid for one room and day
type AvailableSlotsResponse struct {
	RoomID        string         `json:"roomId"`
	Date          string         `json:"date"` // YYYY-MM-DD
	DurationHours int            `json:"durationHours"`
	Slots         []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result to the HTTP model
func FromUseCaseResponse(res *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(res.Slots))
	for _, s := range res.Slots {
		slots = append(slots, SlotResponse{
			Start:     s.Start.UTC().Format(time.RFC3339),
			StartHour: s.StartHour,
			Available: s.Available,
		})
	}
	return &AvailableSlotsResponse{
		RoomID:        string(res.RoomID),
		Date:          res.Date.Format(domain.DateFormat),
		DurationHours: res.DurationHours,
		Slots:         slots,
	}
}
