package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/api/middleware"
	createBooking "github.com/m04kA/HRC-CalendarService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartAt     = "некорректный startAt, ожидается метка времени RFC3339 на 30-минутной сетке текущей недели"
	msgRoleNotAllowed     = "бронировать слоты могут только HR-роли"
	msgPastDate           = "нельзя бронировать прошедший день"
	msgUnknownEventType   = "неизвестный тип события"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNotEnoughSlots     = "недостаточно последовательных свободных слотов для выбранной длительности"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgRoleNotAllowed)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	now := time.Now()
	useCaseReq, err := req.ToUseCaseRequest(role, now)
	if err != nil {
		h.logger.Warn("POST /bookings - bad startAt %q: %v", req.StartAt, err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoleNotAllowed):
			h.logger.Warn("POST /bookings - role=%s rejected", role)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		case errors.Is(err, createBooking.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrUnknownEventType):
			h.logger.Warn("POST /bookings - unknown event type %q", req.EventTypeName)
			handlers.RespondBadRequest(w, msgUnknownEventType)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInsufficientAvailability):
			h.logger.Warn("POST /bookings - insufficient availability: startAt=%s duration=%d",
				req.StartAt, req.DurationMinutes)
			handlers.RespondConflict(w, msgNotEnoughSlots)

		default:
			h.logger.Error("POST /bookings - failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%s role=%s startAt=%s", result.ID, role, req.StartAt)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(now, result))
}
