package list_bookings

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/api/middleware"
	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

const (
	msgMissingRole = "требуется корректный заголовок X-Role"
	msgInvalidDay  = "day должен быть целым числом 0..6, понедельник=0"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgMissingRole)
		return
	}

	now := time.Now()

	dayParam := r.URL.Query().Get("day")
	if dayParam == "" {
		handlers.RespondJSON(w, http.StatusOK, FromServiceViews(now, h.service.List(r.Context(), viewer)))
		return
	}

	day, err := strconv.Atoi(dayParam)
	if err != nil || day < domain.MinDayIndex || day > domain.MaxDayIndex {
		h.logger.Warn("GET /bookings - bad day param %q", dayParam)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceViews(now, h.service.ListByDay(r.Context(), viewer, day)))
}
