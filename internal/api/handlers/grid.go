package handlers

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/pkg/timegrid"
)

// ParseStartAt parses an RFC3339 timestamp and places it on the grid of the
// week containing now.
func ParseStartAt(value string, now time.Time) (dayIdx, startMin int, err error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, 0, err
	}
	return timegrid.Locate(timegrid.WeekStart(now), t)
}

// FormatCell renders a grid cell of the week containing now as RFC3339.
func FormatCell(now time.Time, dayIdx, startMin int) string {
	return timegrid.Absolute(timegrid.WeekStart(now), dayIdx, startMin).Format(time.RFC3339)
}
