package list_event_types

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

type EventTypesService interface {
	List(ctx context.Context) []domain.EventType
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
