package list_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

const msgInvalidDay = "day должен быть целым числом 0..6, понедельник=0"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	dayParam := r.URL.Query().Get("day")
	if dayParam == "" {
		handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(now, h.service.AllVisibleSlots(r.Context())))
		return
	}

	day, err := strconv.Atoi(dayParam)
	if err != nil || day < domain.MinDayIndex || day > domain.MaxDayIndex {
		h.logger.Warn("GET /availability - bad day param %q", dayParam)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(now, h.service.VisibleSlots(r.Context(), day)))
}
