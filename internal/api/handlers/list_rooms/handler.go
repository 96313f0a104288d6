package list_rooms

import (
	"net/http"

	"github.com/terminalstudios/booking-service/internal/api/handlers"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := h.catalog.ListRooms()

	h.logger.Info("GET /rooms - Returned %d rooms", len(response.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
