package add_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/api/middleware"
	"github.com/m04kA/HRC-CalendarService/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartAt     = "некорректный startAt, ожидается метка времени RFC3339 на 30-минутной сетке текущей недели"
	msgRoleNotAllowed     = "публиковать свободные слоты может только разработчик"
	msgPastDate           = "нельзя публиковать доступность в прошедшем дне"
	msgInvalidSlot        = "слот вне рабочего окна дня"
	msgSlotExists         = "слот уже свободен"
	msgSlotConflict       = "слот пересекается с существующим бронированием"
)

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

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgRoleNotAllowed)
		return
	}

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	now := time.Now()
	day, start, err := handlers.ParseStartAt(req.StartAt, now)
	if err != nil {
		h.logger.Warn("POST /availability - bad startAt %q: %v", req.StartAt, err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	if err := h.service.Add(r.Context(), role, day, start); err != nil {
		switch {
		case errors.Is(err, availability.ErrRoleNotAllowed):
			h.logger.Warn("POST /availability - role=%s rejected", role)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		case errors.Is(err, availability.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, availability.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, availability.ErrSlotExists):
			handlers.RespondConflict(w, msgSlotExists)

		case errors.Is(err, availability.ErrSlotConflict):
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("POST /availability - failed to publish slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - slot published: day=%d start=%d role=%s", day, start, role)
	handlers.RespondJSON(w, http.StatusCreated, SlotResponse{
		StartAt: handlers.FormatCell(now, day, start),
	})
}
