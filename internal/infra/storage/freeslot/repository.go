package freeslot

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// Repository is the in-memory free-slot set. Records are unique per
// (dayIndex, startMinute) and kept sorted by (day, start) after every
// mutation, so listings are deterministic.
//
// Multi-unit mutations (ConsumeRun, RestoreRun, InsertMissing) are single
// critical sections: either the whole run is applied or nothing is.
type Repository struct {
	mu    sync.RWMutex
	slots []domain.FreeSlot
}

// NewRepository creates an empty free-slot store.
func NewRepository() *Repository {
	return &Repository{slots: make([]domain.FreeSlot, 0)}
}

// Has reports whether the unit (day, start) is currently free.
func (r *Repository) Has(ctx context.Context, day, start int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(day, start) >= 0
}

// Add inserts one free unit. Returns ErrSlotExists without mutation when the
// unit is already present. Conflict checks against bookings belong to the
// caller; the store only owns set semantics.
func (r *Repository) Add(ctx context.Context, day, start int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(day, start) >= 0 {
		return ErrSlotExists
	}
	r.insert(domain.FreeSlot{DayIndex: day, StartMinute: start})
	return nil
}

// Remove deletes the unit if present; removing an absent unit is a no-op.
func (r *Repository) Remove(ctx context.Context, day, start int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(day, start); i >= 0 {
		r.slots = append(r.slots[:i], r.slots[i+1:]...)
	}
}

// HasContiguousRun reports whether units start, start+30, ... for unitCount
// steps are all free on the given day.
func (r *Repository) HasContiguousRun(ctx context.Context, day, start, unitCount int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasRunLocked(day, start, unitCount)
}

// ConsumeRun atomically removes a contiguous run of unitCount units starting
// at (day, start). When any unit of the run is missing, nothing is removed and
// ErrRunNotAvailable is returned.
func (r *Repository) ConsumeRun(ctx context.Context, day, start, unitCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasRunLocked(day, start, unitCount) {
		return ErrRunNotAvailable
	}

	end := start + unitCount*domain.SlotUnitMinutes
	kept := r.slots[:0]
	for _, s := range r.slots {
		consumed := s.DayIndex == day && s.StartMinute >= start && s.StartMinute < end
		if !consumed {
			kept = append(kept, s)
		}
	}
	r.slots = kept
	return nil
}

// RestoreRun re-inserts every unit of the run that is not already free and
// returns how many units were actually added. Pre-existing free units are
// skipped rather than duplicated.
func (r *Repository) RestoreRun(ctx context.Context, day, start, unitCount int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	restored := 0
	for k := 0; k < unitCount; k++ {
		unitStart := start + k*domain.SlotUnitMinutes
		if r.indexOf(day, unitStart) >= 0 {
			continue
		}
		r.insert(domain.FreeSlot{DayIndex: day, StartMinute: unitStart})
		restored++
	}
	return restored
}

// InsertMissing adds every listed unit that is not already present and
// returns how many were inserted. Used by bulk generation to commit its
// result in one critical section.
func (r *Repository) InsertMissing(ctx context.Context, units []domain.FreeSlot) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := 0
	for _, u := range units {
		if r.indexOf(u.DayIndex, u.StartMinute) >= 0 {
			continue
		}
		r.insert(u)
		inserted++
	}
	return inserted
}

// ListByDay returns the day's free units in start order.
func (r *Repository) ListByDay(ctx context.Context, day int) []domain.FreeSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FreeSlot, 0)
	for _, s := range r.slots {
		if s.DayIndex == day {
			out = append(out, s)
		}
	}
	return out
}

// ListAll returns every free unit sorted by (day, start).
func (r *Repository) ListAll(ctx context.Context) []domain.FreeSlot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.FreeSlot, len(r.slots))
	copy(out, r.slots)
	return out
}

// indexOf returns the position of (day, start) or -1. Callers hold the lock.
func (r *Repository) indexOf(day, start int) int {
	target := domain.FreeSlot{DayIndex: day, StartMinute: start}
	i := sort.Search(len(r.slots), func(i int) bool {
		return !r.slots[i].Before(target)
	})
	if i < len(r.slots) && r.slots[i] == target {
		return i
	}
	return -1
}

// insert places s at its sorted position. Callers hold the lock and have
// verified s is absent.
func (r *Repository) insert(s domain.FreeSlot) {
	i := sort.Search(len(r.slots), func(i int) bool {
		return !r.slots[i].Before(s)
	})
	r.slots = append(r.slots, domain.FreeSlot{})
	copy(r.slots[i+1:], r.slots[i:])
	r.slots[i] = s
}

// hasRunLocked checks the contiguous run without taking the lock.
func (r *Repository) hasRunLocked(day, start, unitCount int) bool {
	for k := 0; k < unitCount; k++ {
		if r.indexOf(day, start+k*domain.SlotUnitMinutes) < 0 {
			return false
		}
	}
	return true
}
