package eventtypes

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// EventTypeRepository is the catalog storage.
type EventTypeRepository interface {
	Create(ctx context.Context, name string) (*domain.EventType, error)
	List(ctx context.Context) []domain.EventType
}

// Logger is the leveled printf-style logger used across the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
