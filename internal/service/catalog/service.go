package catalog

import (
	"github.com/terminalstudios/booking-service/internal/domain"
	"github.com/terminalstudios/booking-service/internal/pricing"
)

// RoomResponse is the public room catalog entry
type RoomResponse struct {
	ID                  string  `json:"id"`
	DisplayName         string  `json:"displayName"`
	Color               string  `json:"color"`
	Capacity            int     `json:"capacity"`
	DefaultEngineer     string  `json:"defaultEngineer"`
	RateWithEngineer    float64 `json:"rateWithEngineer"`
	RateWithoutEngineer float64 `json:"rateWithoutEngineer"`
}

// RoomListResponse is the room catalog
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Service exposes the static room catalog with rates
type Service struct {
	registry *domain.Registry
	rates    *pricing.Table
}

// NewService creates a catalog service over the static registry
func NewService(registry *domain.Registry, rates *pricing.Table) *Service {
	return &Service{registry: registry, rates: rates}
}

// ListRooms returns all rooms with their engineer assignment and rates
func (s *Service) ListRooms() *RoomListResponse {
	rooms := s.registry.List()
	out := make([]RoomResponse, 0, len(rooms))

	for _, room := range rooms {
		entry := RoomResponse{
			ID:              string(room.ID),
			DisplayName:     room.DisplayName,
			Color:           room.Color,
			Capacity:        room.Capacity,
			DefaultEngineer: room.DefaultEngineer,
		}
		if rate, ok := s.rates.Rate(room.ID); ok {
			entry.RateWithEngineer = rate.WithEngineer
			entry.RateWithoutEngineer = rate.WithoutEngineer
		}
		out = append(out, entry)
	}

	return &RoomListResponse{Rooms: out}
}
