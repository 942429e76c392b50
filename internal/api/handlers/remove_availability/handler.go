package remove_availability

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
	msgRoleNotAllowed     = "закрывать свободные слоты может только разработчик"
	msgPastDate           = "нельзя закрывать доступность в прошедшем дне"
	msgInvalidSlot        = "слот вне рабочего окна дня"
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

// Handle DELETE /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgRoleNotAllowed)
		return
	}

	var req RemoveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /availability - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, start, err := handlers.ParseStartAt(req.StartAt, time.Now())
	if err != nil {
		h.logger.Warn("DELETE /availability - bad startAt %q: %v", req.StartAt, err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	if err := h.service.Remove(r.Context(), role, day, start); err != nil {
		switch {
		case errors.Is(err, availability.ErrRoleNotAllowed):
			h.logger.Warn("DELETE /availability - role=%s rejected", role)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		case errors.Is(err, availability.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, availability.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("DELETE /availability - failed to close slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability - slot closed: day=%d start=%d role=%s", day, start, role)
	handlers.RespondNoContent(w)
}
