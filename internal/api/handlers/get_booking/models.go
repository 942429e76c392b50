package get_booking

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/service/bookings/models"
)

// BookingViewResponse HTTP response model. Detail fields are omitted for
// viewers who only see the cell as occupied.
type BookingViewResponse struct {
	ID              string  `json:"id"`
	StartAt         string  `json:"startAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedByRole   string  `json:"createdByRole"`
	Occupied        bool    `json:"occupied"`
	EventTypeName   *string `json:"eventTypeName,omitempty"`
	Company         *string `json:"company,omitempty"`
	HRName          *string `json:"hrName,omitempty"`
	HREmail         *string `json:"hrEmail,omitempty"`
	MeetingLink     *string `json:"meetingLink,omitempty"`
}

// FromServiceView конвертирует проекцию сервиса в HTTP response
func FromServiceView(now time.Time, v *models.BookingView) *BookingViewResponse {
	return &BookingViewResponse{
		ID:              v.ID,
		StartAt:         handlers.FormatCell(now, v.DayIndex, v.StartMinute),
		DurationMinutes: v.DurationMinutes,
		Status:          string(v.Status),
		CreatedByRole:   string(v.CreatedByRole),
		Occupied:        v.Occupied,
		EventTypeName:   v.EventTypeName,
		Company:         v.Company,
		HRName:          v.HRName,
		HREmail:         v.HREmail,
		MeetingLink:     v.MeetingLink,
	}
}
