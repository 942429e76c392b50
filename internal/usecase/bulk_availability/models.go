package bulk_availability

import (
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
)

// Request describes a bulk generation run: a calendar date range crossed with
// a daily time window.
type Request struct {
	Role             domain.Role // must be the developer
	StartDate        time.Time   // first calendar day, inclusive
	EndDate          time.Time   // last calendar day, inclusive
	DailyStartMinute int         // daily window start, minutes since midnight
	DailyEndMinute   int         // daily window end, minutes since midnight
}

// Response carries the outcome: how many units were inserted and the full
// updated free-slot set, sorted by (day, start).
type Response struct {
	Inserted int
	Slots    []domain.FreeSlot
}
