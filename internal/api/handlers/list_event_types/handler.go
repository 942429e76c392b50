package list_event_types

import (
	"net/http"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
)

type Handler struct {
	service EventTypesService
	logger  Logger
}

func NewHandler(service EventTypesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(h.service.List(r.Context())))
}
