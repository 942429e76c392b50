package create_event_type

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

type EventTypesService interface {
	Create(ctx context.Context, name string) (*domain.EventType, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
