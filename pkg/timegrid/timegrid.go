// Package timegrid implements the 30-minute scheduling grid shared by the
// whole service: clock <-> minute-offset conversions, unit enumeration and
// the Monday-first week indexing used to address calendar cells.
package timegrid

import (
	"errors"
	"fmt"
	"time"
)

// UnitMinutes is the elementary scheduling unit. Every free slot is exactly
// one unit; bookings occupy contiguous runs of units.
const UnitMinutes = 30

// Bookable day window: 09:00 (inclusive) to 18:00 (exclusive for unit starts).
const (
	DayStartMinute = 9 * 60
	DayEndMinute   = 18 * 60
)

// ClockFormat is the wire format for intra-day times.
const ClockFormat = "15:04"

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

var (
	// ErrInvalidClock is returned for malformed "HH:MM" input.
	ErrInvalidClock = errors.New("timegrid: invalid HH:MM value")

	// ErrOutsideWeek is returned by Locate when the timestamp does not fall
	// into the 7-day window starting at the given anchor.
	ErrOutsideWeek = errors.New("timegrid: timestamp outside anchor week")

	// ErrOffGrid is returned when a timestamp is not aligned to a unit start.
	ErrOffGrid = errors.New("timegrid: timestamp not aligned to 30-minute grid")
)

// MinutesToClock renders a minute offset since midnight as "HH:MM".
func MinutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ClockToMinutes parses "HH:MM" into a minute offset since midnight.
func ClockToMinutes(clock string) (int, error) {
	t, err := time.Parse(ClockFormat, clock)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// EnumerateUnitStarts lists every unit start m in [startMin, endMin) such that
// the whole unit fits: m + UnitMinutes <= endMin. The result is empty when the
// window is shorter than one unit.
func EnumerateUnitStarts(startMin, endMin int) []int {
	out := make([]int, 0)
	for m := startMin; m+UnitMinutes <= endMin; m += UnitMinutes {
		out = append(out, m)
	}
	return out
}

// DayIndex maps a timestamp's weekday to the calendar column, Monday=0..Sunday=6.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -DayIndex(t))
}

// DayDate resolves a day index against a week anchor (the Monday midnight
// returned by WeekStart).
func DayDate(anchor time.Time, dayIdx int) time.Time {
	return anchor.AddDate(0, 0, dayIdx)
}

// Absolute converts a (dayIdx, startMin) grid cell into an absolute timestamp
// within the anchor week.
func Absolute(anchor time.Time, dayIdx, startMin int) time.Time {
	return DayDate(anchor, dayIdx).Add(time.Duration(startMin) * time.Minute)
}

// DaysBetween returns the number of calendar days from a's date to b's date.
// Only the date components count, so mixed locations and DST shifts cannot
// skew the result.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// Locate is the inverse of Absolute: it places an absolute timestamp onto the
// anchor week's grid. The timestamp is first normalized into the anchor's
// location, so a foreign UTC offset addresses the same instant rather than its
// foreign wall clock. Timestamps outside the week or off the 30-minute grid
// are rejected.
func Locate(anchor time.Time, t time.Time) (dayIdx, startMin int, err error) {
	local := t.In(anchor.Location())
	offsetDays := DaysBetween(anchor, local)
	if offsetDays < 0 || offsetDays > 6 {
		return 0, 0, fmt.Errorf("%w: %s", ErrOutsideWeek, t.Format(time.RFC3339))
	}
	minute := local.Hour()*60 + local.Minute()
	if minute%UnitMinutes != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrOffGrid, t.Format(time.RFC3339))
	}
	return offsetDays, minute, nil
}

// ClampToDayWindow clamps an intra-day minute offset into the bookable window.
func ClampToDayWindow(min int) int {
	if min < DayStartMinute {
		return DayStartMinute
	}
	if min > DayEndMinute {
		return DayEndMinute
	}
	return min
}
