package get_available_slots

import (
	"time"

	"github.com/terminalstudios/booking-service/internal/domain"
)

// Request asks for the availability grid of one room on one day
type Request struct {
	RoomID        domain.RoomID
	Date          time.Time // day, midnight UTC
	DurationHours int       // session length used for each candidate start
	WithEngineer  bool
}

// Response is the per-hour availability grid for calendar rendering
type Response struct {
	RoomID        domain.RoomID
	Date          time.Time
	DurationHours int
	Slots         []Slot
}

// Slot is one candidate start hour
type Slot struct {
	Start     time.Time // candidate session start
	StartHour string    // "15:04" display form
	Available bool
}
