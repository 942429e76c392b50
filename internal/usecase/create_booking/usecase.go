package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	"github.com/m04kA/HRC-CalendarService/pkg/timegrid"
)

// UseCase use case для создания бронирования: проверяет предусловия по
// порядку, атомарно забирает свободные слоты и сохраняет бронирование
// в статусе NOT_APPROVED.
type UseCase struct {
	slotRepo      FreeSlotRepository
	bookingRepo   BookingRepository
	eventTypeRepo EventTypeRepository
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo FreeSlotRepository,
	bookingRepo BookingRepository,
	eventTypeRepo EventTypeRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &UseCase{
		slotRepo:      slotRepo,
		bookingRepo:   bookingRepo,
		eventTypeRepo: eventTypeRepo,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки идут по порядку, первая ошибка выигрывает: роль, дата, тип события,
// контактные поля, непрерывное покрытие слотами. При любой ошибке хранилища
// остаются нетронутыми.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: role=%s day=%d start=%s duration=%d type=%q",
		req.Role, req.DayIndex, timegrid.MinutesToClock(req.StartMinute), req.DurationMinutes, req.EventTypeName)

	if err := validateCell(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 1. Бронируют только HR-роли; разработчик публикует доступность.
	if !req.Role.IsHR() {
		uc.logger.Warn("CreateBooking: role=%s rejected", req.Role)
		return nil, ErrRoleNotAllowed
	}

	// 2. Целевой день не должен быть раньше сегодняшнего.
	now := uc.timeProvider.Now()
	date := timegrid.DayDate(timegrid.WeekStart(now), req.DayIndex)
	if date.Before(timegrid.StartOfDay(now)) {
		uc.logger.Warn("CreateBooking: day=%d is in the past", req.DayIndex)
		return nil, ErrPastDate
	}

	// 3. Тип события должен существовать в каталоге; в бронирование пишем
	// каноническое имя из каталога.
	eventType, err := uc.eventTypeRepo.GetByName(ctx, strings.TrimSpace(req.EventTypeName))
	if err != nil {
		uc.logger.Warn("CreateBooking: event type %q not found", req.EventTypeName)
		return nil, ErrUnknownEventType
	}

	// 4. Контактные поля не должны быть пустыми после trim.
	if err := validateContacts(req); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Забираем непрерывную цепочку слотов; проверка и удаление выполняются
	// одним атомарным шагом, два гоняющихся запроса не заберут один слот.
	units := req.DurationMinutes / domain.SlotUnitMinutes
	if err := uc.slotRepo.ConsumeRun(ctx, req.DayIndex, req.StartMinute, units); err != nil {
		uc.logger.Warn("CreateBooking: no contiguous run day=%d start=%s units=%d",
			req.DayIndex, timegrid.MinutesToClock(req.StartMinute), units)
		return nil, fmt.Errorf("%w for %d minutes", ErrInsufficientAvailability, req.DurationMinutes)
	}

	booking := &domain.Booking{
		DayIndex:        req.DayIndex,
		StartMinute:     req.StartMinute,
		DurationMinutes: req.DurationMinutes,
		CreatedByRole:   req.Role,
		EventTypeName:   eventType.Name,
		Status:          domain.StatusNotApproved,
		Company:         req.Company,
		HRName:          req.HRName,
		HREmail:         req.HREmail,
		MeetingLink:     req.MeetingLink,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		// возвращаем забранные слоты, чтобы хранилища остались согласованными
		uc.slotRepo.RestoreRun(ctx, req.DayIndex, req.StartMinute, units)
		uc.logger.Error("CreateBooking: failed to store booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.BookingCreated()
	uc.metrics.SlotsConsumed(units)
	uc.logger.Info("CreateBooking: booking id=%s created, %d units consumed", created.ID, units)
	return fromDomain(created), nil
}
