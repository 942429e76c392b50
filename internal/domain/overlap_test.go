package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	// same start, nested durations
	assert.True(t, Overlaps(600, 30, 600, 120))

	// far apart
	assert.False(t, Overlaps(600, 30, 780, 120))

	// adjacency is not overlap
	assert.False(t, Overlaps(600, 30, 630, 30))
	assert.False(t, Overlaps(630, 30, 600, 30))

	// partial intersection
	assert.True(t, Overlaps(690, 30, 680, 40))
}

func TestOverlapsSameDay(t *testing.T) {
	b := &Booking{DayIndex: 1, StartMinute: 600, DurationMinutes: 60}

	// other day never overlaps, even with identical minutes
	assert.False(t, b.OverlapsUnit(2, 600))

	// same day, same unit
	assert.True(t, b.OverlapsUnit(1, 600))

	// same day, adjacent unit after the booking
	assert.False(t, b.OverlapsUnit(1, 660))
}

func TestBookingUnits(t *testing.T) {
	assert.Equal(t, 1, (&Booking{DurationMinutes: 30}).Units())
	assert.Equal(t, 4, (&Booking{DurationMinutes: 120}).Units())
}

func TestBookingDetailVisibility(t *testing.T) {
	b := &Booking{CreatedByRole: RoleHR1}

	assert.True(t, b.IsVisibleInDetailTo(RoleDeveloper))
	assert.True(t, b.IsVisibleInDetailTo(RoleHR1))
	assert.False(t, b.IsVisibleInDetailTo(RoleHR2))
}
