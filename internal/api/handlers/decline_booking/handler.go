package decline_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/api/middleware"
	"github.com/m04kA/HRC-CalendarService/internal/service/bookings"
)

const (
	msgRoleNotAllowed  = "отклонять бронирования может только разработчик"
	msgBookingNotFound = "бронирование не найдено"
	msgPastDate        = "нельзя отклонить прошедшее бронирование"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgRoleNotAllowed)
		return
	}
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.Decline(r.Context(), role, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrRoleNotAllowed):
			h.logger.Warn("DELETE /bookings/%s - role=%s rejected", bookingID, role)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("DELETE /bookings/%s - failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%s - booking declined, slots restored", bookingID)
	handlers.RespondNoContent(w)
}
