package availability

import (
	"context"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// FreeSlotRepository is the slice of the free-slot store this service needs.
type FreeSlotRepository interface {
	Has(ctx context.Context, day, start int) bool
	Add(ctx context.Context, day, start int) error
	Remove(ctx context.Context, day, start int)
	ListByDay(ctx context.Context, day int) []domain.FreeSlot
}

// BookingRepository provides the bookings needed for conflict checks and the
// defensive visible-slots filter.
type BookingRepository interface {
	ListByDay(ctx context.Context, day int) []*domain.Booking
}

// Metrics receives engine counters. Wired from cmd; NopMetrics when disabled.
type Metrics interface {
	SlotsAdded(n int)
}

// NopMetrics drops every observation.
type NopMetrics struct{}

func (NopMetrics) SlotsAdded(int) {}

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
