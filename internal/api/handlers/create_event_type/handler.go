package create_event_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/service/eventtypes"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNameRequired       = "название типа события обязательно"
	msgNameTooLong        = "название типа события не должно превышать 18 символов"
	msgAlreadyExists      = "такой тип события уже существует"
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

// Handle POST /api/v1/event-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEventTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /event-types - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	et, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, eventtypes.ErrNameRequired):
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, eventtypes.ErrNameTooLong):
			handlers.RespondBadRequest(w, msgNameTooLong)

		case errors.Is(err, eventtypes.ErrAlreadyExists):
			h.logger.Warn("POST /event-types - duplicate name %q", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /event-types - failed to create %q: %v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /event-types - created %q id=%s", et.Name, et.ID)
	handlers.RespondJSON(w, http.StatusCreated, EventTypeResponse{ID: et.ID, Name: et.Name})
}
