package bulk_availability

import (
	"context"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// FreeSlotRepository receives the generated units.
type FreeSlotRepository interface {
	Has(ctx context.Context, day, start int) bool
	InsertMissing(ctx context.Context, units []domain.FreeSlot) int
	ListAll(ctx context.Context) []domain.FreeSlot
}

// BookingRepository provides the bookings the generator must not collide with.
type BookingRepository interface {
	ListByDay(ctx context.Context, day int) []*domain.Booking
}

// Metrics receives engine counters.
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
