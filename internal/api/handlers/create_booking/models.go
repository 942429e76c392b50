package create_booking

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/domain"
	createBooking "github.com/m04kA/HRC-CalendarService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartAt         string  `json:"startAt" validate:"required"` // "2026-01-07T10:00:00Z"
	DurationMinutes int     `json:"durationMinutes" validate:"required,oneof=30 60 90 120"`
	EventTypeName   string  `json:"eventTypeName" validate:"required"`
	Company         string  `json:"company" validate:"required"`
	HRName          string  `json:"hrName" validate:"required"`
	HREmail         string  `json:"hrEmail" validate:"required,email"`
	MeetingLink     *string `json:"meetingLink,omitempty" validate:"omitempty,url"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	StartAt         string  `json:"startAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedByRole   string  `json:"createdByRole"`
	EventTypeName   string  `json:"eventTypeName"`
	Company         string  `json:"company"`
	HRName          string  `json:"hrName"`
	HREmail         string  `json:"hrEmail"`
	MeetingLink     *string `json:"meetingLink,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case, кладёт startAt
// на сетку текущей недели.
func (r *CreateBookingRequest) ToUseCaseRequest(role domain.Role, now time.Time) (*createBooking.Request, error) {
	day, start, err := handlers.ParseStartAt(r.StartAt, now)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Role:            role,
		DayIndex:        day,
		StartMinute:     start,
		DurationMinutes: r.DurationMinutes,
		EventTypeName:   r.EventTypeName,
		Company:         r.Company,
		HRName:          r.HRName,
		HREmail:         r.HREmail,
		MeetingLink:     r.MeetingLink,
	}, nil
}

// FromUseCaseResponse конвертирует созданное бронирование в HTTP response.
func FromUseCaseResponse(now time.Time, resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		StartAt:         handlers.FormatCell(now, resp.DayIndex, resp.StartMinute),
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		CreatedByRole:   string(resp.CreatedByRole),
		EventTypeName:   resp.EventTypeName,
		Company:         resp.Company,
		HRName:          resp.HRName,
		HREmail:         resp.HREmail,
		MeetingLink:     resp.MeetingLink,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
