package domain

// FreeSlot is one open elementary unit on the weekly grid. The pair
// (DayIndex, StartMinute) is unique within the free-slot store.
type FreeSlot struct {
	DayIndex    int
	StartMinute int
}

// Before orders slots by (day, start); the store keeps its records sorted with
// this for deterministic listings.
func (s FreeSlot) Before(other FreeSlot) bool {
	if s.DayIndex != other.DayIndex {
		return s.DayIndex < other.DayIndex
	}
	return s.StartMinute < other.StartMinute
}
