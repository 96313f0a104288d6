package list_rooms

import "github.com/terminalstudios/booking-service/internal/service/catalog"

type CatalogService interface {
	ListRooms() *catalog.RoomListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
