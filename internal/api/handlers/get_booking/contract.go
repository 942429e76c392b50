package get_booking

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	"github.com/m04kA/HRC-CalendarService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, viewer domain.Role, id string) (*models.BookingView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
