package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// Repository is the in-memory booking store, keyed by booking id. Listings
// are returned sorted by (day, start) and as copies, so callers can never
// mutate stored records directly.
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

// NewRepository creates an empty booking store.
func NewRepository() *Repository {
	return &Repository{bookings: make(map[string]*domain.Booking)}
}

// Create stores the booking under a fresh id and stamps CreatedAt/UpdatedAt.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *b
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.bookings[stored.ID] = &stored

	out := stored
	return &out, nil
}

// GetByID returns a copy of the booking or ErrBookingNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

// UpdateStatus sets the booking's approval status and returns the updated
// record.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()

	out := *b
	return &out, nil
}

// Delete removes the booking and returns the removed record, so the caller
// can restore the consumed units.
func (r *Repository) Delete(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	delete(r.bookings, id)

	out := *b
	return &out, nil
}

// ListByDay returns the day's bookings sorted by start minute.
func (r *Repository) ListByDay(ctx context.Context, day int) []*domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.DayIndex == day {
			c := *b
			out = append(out, &c)
		}
	}
	sortBookings(out)
	return out
}

// ListAll returns every booking sorted by (day, start).
func (r *Repository) ListAll(ctx context.Context) []*domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		c := *b
		out = append(out, &c)
	}
	sortBookings(out)
	return out
}

func sortBookings(bs []*domain.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].DayIndex != bs[j].DayIndex {
			return bs[i].DayIndex < bs[j].DayIndex
		}
		if bs[i].StartMinute != bs[j].StartMinute {
			return bs[i].StartMinute < bs[j].StartMinute
		}
		return bs[i].ID < bs[j].ID
	})
}
