package domain

import "time"

// BookingStatus is the approval state of a booking. Declining has no status of
// its own: a declined booking is removed and its units restored.
type BookingStatus string

const (
	StatusNotApproved BookingStatus = "NOT_APPROVED"
	StatusApproved    BookingStatus = "APPROVED"
)

// IsValid reports whether s is a known status.
func (s BookingStatus) IsValid() bool {
	return s == StatusNotApproved || s == StatusApproved
}

// Booking is a reserved run of contiguous 30-minute units on one weekday,
// created by an HR role and approved or declined by the developer.
type Booking struct {
	ID              string
	DayIndex        int // 0..6, Monday=0
	StartMinute     int // minutes since midnight
	DurationMinutes int // multiple of SlotUnitMinutes
	CreatedByRole   Role
	EventTypeName   string
	Status          BookingStatus
	Company         string
	HRName          string
	HREmail         string
	MeetingLink     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Units returns how many elementary units the booking occupies.
func (b *Booking) Units() int {
	units := b.DurationMinutes / SlotUnitMinutes
	if b.DurationMinutes%SlotUnitMinutes != 0 {
		units++
	}
	if units < 1 {
		units = 1
	}
	return units
}

// EndMinute is the half-open end of the booked interval.
func (b *Booking) EndMinute() int {
	return b.StartMinute + b.DurationMinutes
}

// OverlapsInterval reports whether the booking intersects the interval
// [startMin, startMin+durationMin) on the given day.
func (b *Booking) OverlapsInterval(dayIdx, startMin, durationMin int) bool {
	return OverlapsSameDay(dayIdx, startMin, durationMin, b.DayIndex, b.StartMinute, b.DurationMinutes)
}

// OverlapsUnit reports whether the booking intersects one elementary unit.
func (b *Booking) OverlapsUnit(dayIdx, startMin int) bool {
	return b.OverlapsInterval(dayIdx, startMin, SlotUnitMinutes)
}

// IsVisibleInDetailTo reports whether the viewer may see the booking's contact
// fields. The developer sees everything; an HR role sees only its own
// bookings — the other HR role gets an opaque occupied marker.
func (b *Booking) IsVisibleInDetailTo(viewer Role) bool {
	return viewer.IsDeveloper() || viewer == b.CreatedByRole
}
