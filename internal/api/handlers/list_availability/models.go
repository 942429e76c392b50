package list_availability

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	StartAt string `json:"startAt"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlots конвертирует ячейки сетки в абсолютные метки времени текущей недели.
func FromDomainSlots(now time.Time, slots []domain.FreeSlot) *SlotsResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			StartAt: handlers.FormatCell(now, s.DayIndex, s.StartMinute),
		})
	}
	return &SlotsResponse{Slots: out}
}
