package bulk_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	"github.com/m04kA/HRC-CalendarService/pkg/timegrid"
)

// UseCase use case массовой генерации доступности: заполняет диапазон дат
// свободными слотами внутри дневного окна, пропуская прошедшие дни, дни вне
// текущей недели, уже свободные слоты и слоты под бронированиями.
type UseCase struct {
	slotRepo     FreeSlotRepository
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo FreeSlotRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case массовой генерации.
// Валидирует запрос, перечисляет кандидатные слоты и вставляет недостающие
// одним шагом. Возвращает число вставленных слотов и полный итоговый набор.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BulkAvailability: role=%s range=%s..%s window=%s-%s",
		req.Role,
		req.StartDate.Format(timegrid.DateFormat), req.EndDate.Format(timegrid.DateFormat),
		timegrid.MinutesToClock(req.DailyStartMinute), timegrid.MinutesToClock(req.DailyEndMinute))

	if !req.Role.IsDeveloper() {
		uc.logger.Warn("BulkAvailability: role=%s rejected", req.Role)
		return nil, ErrRoleNotAllowed
	}

	start := timegrid.StartOfDay(req.StartDate)
	end := timegrid.StartOfDay(req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate must not precede startDate", ErrInvalidInput)
	}

	// Обрезаем дневное окно до рабочего дня перед проверкой длины.
	sMin := timegrid.ClampToDayWindow(req.DailyStartMinute)
	eMin := timegrid.ClampToDayWindow(req.DailyEndMinute)
	if eMin-sMin < domain.SlotUnitMinutes {
		uc.logger.Warn("BulkAvailability: window %s-%s too short after clamping",
			timegrid.MinutesToClock(sMin), timegrid.MinutesToClock(eMin))
		return nil, ErrWindowTooShort
	}

	now := uc.timeProvider.Now()
	today := timegrid.StartOfDay(now)
	anchor := timegrid.WeekStart(now)

	var candidates []domain.FreeSlot
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if timegrid.DaysBetween(today, date) < 0 {
			continue
		}
		dayIdx := timegrid.DaysBetween(anchor, date)
		if dayIdx < domain.MinDayIndex || dayIdx > domain.MaxDayIndex {
			continue
		}

		bookings := uc.bookingRepo.ListByDay(ctx, dayIdx)
		for _, startMin := range timegrid.EnumerateUnitStarts(sMin, eMin) {
			if uc.slotRepo.Has(ctx, dayIdx, startMin) {
				continue
			}
			if unitConflicts(bookings, startMin) {
				continue
			}
			candidates = append(candidates, domain.FreeSlot{DayIndex: dayIdx, StartMinute: startMin})
		}
	}

	inserted := uc.slotRepo.InsertMissing(ctx, candidates)
	if inserted > 0 {
		uc.metrics.SlotsAdded(inserted)
	}
	uc.logger.Info("BulkAvailability: %d units inserted", inserted)

	return &Response{
		Inserted: inserted,
		Slots:    uc.slotRepo.ListAll(ctx),
	}, nil
}

// unitConflicts reports whether any booking on the day covers the unit.
func unitConflicts(bookings []*domain.Booking, startMin int) bool {
	for _, b := range bookings {
		if b.OverlapsUnit(b.DayIndex, startMin) {
			return true
		}
	}
	return false
}
