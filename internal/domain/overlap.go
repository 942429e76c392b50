package domain

// Overlaps reports whether two half-open minute intervals on the same day
// intersect. Adjacent intervals (end == start) do not overlap.
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// OverlapsSameDay is the cross-day-aware form: intervals on different days
// never overlap regardless of minutes.
func OverlapsSameDay(aDay, aStart, aDur, bDay, bStart, bDur int) bool {
	return aDay == bDay && Overlaps(aStart, aDur, bStart, bDur)
}
