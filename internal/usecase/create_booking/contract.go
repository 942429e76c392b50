package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// FreeSlotRepository consumes the contiguous run a booking occupies.
type FreeSlotRepository interface {
	HasContiguousRun(ctx context.Context, day, start, unitCount int) bool
	ConsumeRun(ctx context.Context, day, start, unitCount int) error
	RestoreRun(ctx context.Context, day, start, unitCount int) int
}

// BookingRepository stores the created booking.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// EventTypeRepository resolves the requested label.
type EventTypeRepository interface {
	GetByName(ctx context.Context, name string) (*domain.EventType, error)
}

// Metrics receives engine counters.
type Metrics interface {
	BookingCreated()
	SlotsConsumed(n int)
}

// NopMetrics drops every observation.
type NopMetrics struct{}

func (NopMetrics) BookingCreated()   {}
func (NopMetrics) SlotsConsumed(int) {}

// TimeProvider supplies the current time; swapped in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the leveled printf-style logger used across the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
