package domain

import "github.com/m04kA/HRC-CalendarService/pkg/timegrid"

// SlotUnitMinutes is the elementary scheduling unit; free slots are exactly
// one unit long and bookings are contiguous runs of units.
const SlotUnitMinutes = timegrid.UnitMinutes

// Bookable day window, minutes since midnight.
const (
	DayStartMinute = timegrid.DayStartMinute
	DayEndMinute   = timegrid.DayEndMinute
)

// Day index bounds, Monday=0..Sunday=6.
const (
	MinDayIndex = 0
	MaxDayIndex = 6
)

// MaxEventTypeNameLen bounds event type labels.
const MaxEventTypeNameLen = 18

// AllowedDurations are the booking lengths offered to HR roles.
var AllowedDurations = []int{30, 60, 90, 120}

// IsAllowedDuration reports whether d is a bookable duration.
func IsAllowedDuration(d int) bool {
	for _, allowed := range AllowedDurations {
		if d == allowed {
			return true
		}
	}
	return false
}

// DefaultEventTypeNames seed the catalog of a fresh calendar.
var DefaultEventTypeNames = []string{"Screening", "Technical", "HR Manager"}
