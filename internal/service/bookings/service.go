package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	bookingRepo "github.com/m04kA/HRC-CalendarService/internal/infra/storage/booking"
	"github.com/m04kA/HRC-CalendarService/internal/service/bookings/models"
	"github.com/m04kA/HRC-CalendarService/pkg/timegrid"
)

// Service owns booking reads and the developer's state transitions:
// approve/unapprove toggling and decline, which deletes the booking and
// restores its consumed units.
type Service struct {
	bookingRepo  BookingRepository
	slotRepo     FreeSlotRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, slotRepo FreeSlotRepository, metrics Metrics, logger Logger) *Service {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Service{
		bookingRepo:  bookingRepo,
		slotRepo:     slotRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID returns the booking as visible to the viewer. Foreign HR viewers
// receive the opaque occupied projection rather than an error: the grid shows
// the cell as taken either way.
func (s *Service) GetByID(ctx context.Context, viewer domain.Role, id string) (*models.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return models.FromDomainBooking(b, viewer), nil
}

// List returns every booking of the week, gated per viewer.
func (s *Service) List(ctx context.Context, viewer domain.Role) []*models.BookingView {
	return models.FromDomainBookingList(s.bookingRepo.ListAll(ctx), viewer)
}

// ListByDay returns one day's bookings, gated per viewer.
func (s *Service) ListByDay(ctx context.Context, viewer domain.Role, day int) []*models.BookingView {
	return models.FromDomainBookingList(s.bookingRepo.ListByDay(ctx, day), viewer)
}

// SetApproval flips a booking between APPROVED and NOT_APPROVED. Developer
// only; bookings on past days are frozen.
func (s *Service) SetApproval(ctx context.Context, actor domain.Role, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !actor.IsDeveloper() {
		s.logger.Warn("SetApproval: role=%s may not change approval", actor)
		return nil, ErrRoleNotAllowed
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.getMutable(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, b.ID, status)
	if err != nil {
		s.logger.Error("SetApproval: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("SetApproval: booking id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// Decline removes the booking and re-opens every elementary unit it occupied.
// Units that are already free (which would indicate an earlier inconsistency)
// are skipped, never duplicated.
func (s *Service) Decline(ctx context.Context, actor domain.Role, id string) error {
	if !actor.IsDeveloper() {
		s.logger.Warn("Decline: role=%s may not decline", actor)
		return ErrRoleNotAllowed
	}

	b, err := s.getMutable(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.bookingRepo.Delete(ctx, b.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Decline: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	restored := s.slotRepo.RestoreRun(ctx, removed.DayIndex, removed.StartMinute, removed.Units())
	s.metrics.BookingDeclined()
	s.logger.Info("Decline: booking id=%s removed, %d/%d units restored on day=%d start=%s",
		removed.ID, restored, removed.Units(), removed.DayIndex, timegrid.MinutesToClock(removed.StartMinute))
	return nil
}

// getMutable loads a booking and refuses state changes on past days.
func (s *Service) getMutable(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getMutable: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	date := timegrid.DayDate(timegrid.WeekStart(now), b.DayIndex)
	if date.Before(timegrid.StartOfDay(now)) {
		s.logger.Warn("getMutable: booking id=%s is on past day=%d", id, b.DayIndex)
		return nil, ErrPastDate
	}
	return b, nil
}
