package availability

import (
	"context"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	"github.com/m04kA/HRC-CalendarService/pkg/timegrid"
)

// Service owns single-slot availability management and the booking-filtered
// view the calendar grid renders.
type Service struct {
	slotRepo     FreeSlotRepository
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the availability service.
func NewService(slotRepo FreeSlotRepository, bookingRepo BookingRepository, metrics Metrics, logger Logger) *Service {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Service{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CanAdd reports whether a free unit may be published at (day, start): the
// cell must be valid, not already free, and clear of bookings.
func (s *Service) CanAdd(ctx context.Context, day, start int) bool {
	if !validCell(day, start) {
		return false
	}
	if s.slotRepo.Has(ctx, day, start) {
		return false
	}
	return !s.unitConflicts(ctx, day, start)
}

// Add publishes one free unit. Developer only; past days are refused.
func (s *Service) Add(ctx context.Context, actor domain.Role, day, start int) error {
	if !actor.IsDeveloper() {
		s.logger.Warn("Add: role=%s may not publish slots", actor)
		return ErrRoleNotAllowed
	}
	if !validCell(day, start) {
		s.logger.Warn("Add: invalid cell day=%d start=%d", day, start)
		return ErrInvalidSlot
	}
	if s.isPastDay(day) {
		s.logger.Warn("Add: day=%d is in the past", day)
		return ErrPastDate
	}
	if s.slotRepo.Has(ctx, day, start) {
		return ErrSlotExists
	}
	if s.unitConflicts(ctx, day, start) {
		s.logger.Warn("Add: day=%d start=%d overlaps a booking", day, start)
		return ErrSlotConflict
	}
	if err := s.slotRepo.Add(ctx, day, start); err != nil {
		// проиграли гонку другому add; итог тот же, что и у проверки выше
		return ErrSlotExists
	}

	s.metrics.SlotsAdded(1)
	s.logger.Info("Add: published free slot day=%d start=%s", day, timegrid.MinutesToClock(start))
	return nil
}

// Remove closes one free unit. Developer only; past days are refused; removing
// an absent unit is a no-op.
func (s *Service) Remove(ctx context.Context, actor domain.Role, day, start int) error {
	if !actor.IsDeveloper() {
		s.logger.Warn("Remove: role=%s may not close slots", actor)
		return ErrRoleNotAllowed
	}
	if !validCell(day, start) {
		return ErrInvalidSlot
	}
	if s.isPastDay(day) {
		s.logger.Warn("Remove: day=%d is in the past", day)
		return ErrPastDate
	}

	s.slotRepo.Remove(ctx, day, start)
	s.logger.Info("Remove: closed free slot day=%d start=%s", day, timegrid.MinutesToClock(start))
	return nil
}

// VisibleSlots returns the day's free units minus any that overlap a booking.
// The filter should be redundant given the store invariants; it guards against
// direct-mutation bugs.
func (s *Service) VisibleSlots(ctx context.Context, day int) []domain.FreeSlot {
	slots := s.slotRepo.ListByDay(ctx, day)
	bookings := s.bookingRepo.ListByDay(ctx, day)

	out := make([]domain.FreeSlot, 0, len(slots))
	for _, slot := range slots {
		conflicted := false
		for _, b := range bookings {
			if b.OverlapsUnit(slot.DayIndex, slot.StartMinute) {
				conflicted = true
				break
			}
		}
		if !conflicted {
			out = append(out, slot)
		}
	}
	return out
}

// AllVisibleSlots applies the VisibleSlots filter across the whole week.
func (s *Service) AllVisibleSlots(ctx context.Context) []domain.FreeSlot {
	out := make([]domain.FreeSlot, 0)
	for day := domain.MinDayIndex; day <= domain.MaxDayIndex; day++ {
		out = append(out, s.VisibleSlots(ctx, day)...)
	}
	return out
}

func (s *Service) unitConflicts(ctx context.Context, day, start int) bool {
	for _, b := range s.bookingRepo.ListByDay(ctx, day) {
		if b.OverlapsUnit(day, start) {
			return true
		}
	}
	return false
}

// isPastDay resolves the day index against the current week and compares the
// date with today.
func (s *Service) isPastDay(day int) bool {
	now := s.timeProvider.Now()
	date := timegrid.DayDate(timegrid.WeekStart(now), day)
	return date.Before(timegrid.StartOfDay(now))
}

func validCell(day, start int) bool {
	if day < domain.MinDayIndex || day > domain.MaxDayIndex {
		return false
	}
	if start%domain.SlotUnitMinutes != 0 {
		return false
	}
	return start >= domain.DayStartMinute && start+domain.SlotUnitMinutes <= domain.DayEndMinute
}
