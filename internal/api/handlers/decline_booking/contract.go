package decline_booking

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

type BookingsService interface {
	Decline(ctx context.Context, actor domain.Role, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
