package bookings

import (
	"context"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// BookingRepository is the slice of the booking store this service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) (*domain.Booking, error)
	ListByDay(ctx context.Context, day int) []*domain.Booking
	ListAll(ctx context.Context) []*domain.Booking
}

// FreeSlotRepository restores the units a declined booking occupied.
type FreeSlotRepository interface {
	RestoreRun(ctx context.Context, day, start, unitCount int) int
}

// Metrics receives engine counters.
type Metrics interface {
	BookingDeclined()
}

// NopMetrics drops every observation.
type NopMetrics struct{}

func (NopMetrics) BookingDeclined() {}

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
