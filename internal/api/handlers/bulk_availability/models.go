package bulk_availability

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/domain"
	bulkAvailability "github.com/m04kA/HRC-CalendarService/internal/usecase/bulk_availability"
	"github.com/m04kA/HRC-CalendarService/pkg/timegrid"
)

// BulkAddRequest HTTP request model
type BulkAddRequest struct {
	StartDate  string `json:"startDate" validate:"required"`  // "2026-01-05"
	EndDate    string `json:"endDate" validate:"required"`    // "2026-01-09"
	DailyStart string `json:"dailyStart" validate:"required"` // "09:00"
	DailyEnd   string `json:"dailyEnd" validate:"required"`   // "18:00"
}

// BulkAddResponse HTTP response model
type BulkAddResponse struct {
	Inserted int            `json:"inserted"`
	Slots    []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	StartAt string `json:"startAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case, разбирая даты и время.
func (r *BulkAddRequest) ToUseCaseRequest(role domain.Role) (*bulkAvailability.Request, error) {
	startDate, err := time.Parse(timegrid.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(timegrid.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}
	dailyStart, err := timegrid.ClockToMinutes(r.DailyStart)
	if err != nil {
		return nil, err
	}
	dailyEnd, err := timegrid.ClockToMinutes(r.DailyEnd)
	if err != nil {
		return nil, err
	}

	return &bulkAvailability.Request{
		Role:             role,
		StartDate:        startDate,
		EndDate:          endDate,
		DailyStartMinute: dailyStart,
		DailyEndMinute:   dailyEnd,
	}, nil
}

// FromUseCaseResponse конвертирует итоговый набор слотов в абсолютные метки времени.
func FromUseCaseResponse(now time.Time, resp *bulkAvailability.Response) *BulkAddResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartAt: handlers.FormatCell(now, s.DayIndex, s.StartMinute),
		})
	}
	return &BulkAddResponse{
		Inserted: resp.Inserted,
		Slots:    slots,
	}
}
