package update_booking_status

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/api/middleware"
	"github.com/m04kA/HRC-CalendarService/internal/domain"
	"github.com/m04kA/HRC-CalendarService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, status должен быть APPROVED или NOT_APPROVED"
	msgRoleNotAllowed     = "менять статус подтверждения может только разработчик"
	msgBookingNotFound    = "бронирование не найдено"
	msgPastDate           = "нельзя менять статус прошедшего бронирования"
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

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgRoleNotAllowed)
		return
	}
	bookingID := mux.Vars(r)["bookingId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%s/status - invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.SetApproval(r.Context(), role, bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRoleNotAllowed):
			h.logger.Warn("PATCH /bookings/%s/status - role=%s rejected", bookingID, role)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/%s/status - failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/status - status=%s", updated.ID, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBooking(time.Now(), updated))
}
