package update_booking_status

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED NOT_APPROVED"`
}

// BookingStatusResponse HTTP response model
type BookingStatusResponse struct {
	ID        string `json:"id"`
	StartAt   string `json:"startAt"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainBooking конвертирует обновлённое бронирование в HTTP response.
func FromDomainBooking(now time.Time, b *domain.Booking) *BookingStatusResponse {
	return &BookingStatusResponse{
		ID:        b.ID,
		StartAt:   handlers.FormatCell(now, b.DayIndex, b.StartMinute),
		Status:    string(b.Status),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
