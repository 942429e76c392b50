package update_booking_status

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

type BookingsService interface {
	SetApproval(ctx context.Context, actor domain.Role, id string, status domain.BookingStatus) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
