package models

import (
	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// BookingView is a booking as seen by a particular viewer. Position, status
// and creator role are always exposed; the detail fields are withheld (nil,
// Occupied=true) unless the viewer is the developer or the creating HR role.
type BookingView struct {
	ID              string
	DayIndex        int
	StartMinute     int
	DurationMinutes int
	Status          domain.BookingStatus
	CreatedByRole   domain.Role
	Occupied        bool

	EventTypeName *string
	Company       *string
	HRName        *string
	HREmail       *string
	MeetingLink   *string
}

// FromDomainBooking конвертирует бронирование в проекцию с учётом роли наблюдателя.
func FromDomainBooking(b *domain.Booking, viewer domain.Role) *BookingView {
	view := &BookingView{
		ID:              b.ID,
		DayIndex:        b.DayIndex,
		StartMinute:     b.StartMinute,
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status,
		CreatedByRole:   b.CreatedByRole,
	}

	if !b.IsVisibleInDetailTo(viewer) {
		view.Occupied = true
		return view
	}

	eventType := b.EventTypeName
	company := b.Company
	hrName := b.HRName
	hrEmail := b.HREmail
	view.EventTypeName = &eventType
	view.Company = &company
	view.HRName = &hrName
	view.HREmail = &hrEmail
	view.MeetingLink = b.MeetingLink
	return view
}

// FromDomainBookingList конвертирует список бронирований для одного наблюдателя.
func FromDomainBookingList(bs []*domain.Booking, viewer domain.Role) []*BookingView {
	out := make([]*BookingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromDomainBooking(b, viewer))
	}
	return out
}
