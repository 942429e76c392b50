package create_booking

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// Request carries one booking intent addressed by grid cell.
type Request struct {
	Role            domain.Role // requesting actor; must be HR1 or HR2
	DayIndex        int         // 0..6, Monday=0
	StartMinute     int         // minutes since midnight, unit-aligned
	DurationMinutes int         // one of 30/60/90/120
	EventTypeName   string
	Company         string
	HRName          string
	HREmail         string
	MeetingLink     *string // optional
}

// Response mirrors the created booking.
type Response struct {
	ID              string
	DayIndex        int
	StartMinute     int
	DurationMinutes int
	CreatedByRole   domain.Role
	EventTypeName   string
	Status          domain.BookingStatus
	Company         string
	HRName          string
	HREmail         string
	MeetingLink     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		DayIndex:        b.DayIndex,
		StartMinute:     b.StartMinute,
		DurationMinutes: b.DurationMinutes,
		CreatedByRole:   b.CreatedByRole,
		EventTypeName:   b.EventTypeName,
		Status:          b.Status,
		Company:         b.Company,
		HRName:          b.HRName,
		HREmail:         b.HREmail,
		MeetingLink:     b.MeetingLink,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
