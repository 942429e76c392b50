package add_availability

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

type AvailabilityService interface {
	Add(ctx context.Context, actor domain.Role, day, start int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
