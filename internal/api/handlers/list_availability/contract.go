package list_availability

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

type AvailabilityService interface {
	VisibleSlots(ctx context.Context, day int) []domain.FreeSlot
	AllVisibleSlots(ctx context.Context) []domain.FreeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
