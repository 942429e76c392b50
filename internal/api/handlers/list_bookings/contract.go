package list_bookings

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	"github.com/m04kA/HRC-CalendarService/internal/service/bookings/models"
)

type BookingsService interface {
	List(ctx context.Context, viewer domain.Role) []*models.BookingView
	ListByDay(ctx context.Context, viewer domain.Role, day int) []*models.BookingView
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
