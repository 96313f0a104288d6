package get_room_reservations

import (
	"context"

	"github.com/terminalstudios/booking-service/internal/service/reservations/models"
)

type ReservationsService interface {
	GetRoomSchedule(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.RoomScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
