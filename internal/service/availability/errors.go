package availability

import "errors"

var (
	// ErrRoleNotAllowed is returned when a non-developer tries to mutate
	// availability.
	ErrRoleNotAllowed = errors.New("availability: only the developer may manage free slots")

	// ErrPastDate is returned for mutations targeting a day before today.
	ErrPastDate = errors.New("availability: cannot modify availability in the past")

	// ErrInvalidSlot is returned when (day, start) is not a valid grid cell.
	ErrInvalidSlot = errors.New("availability: invalid slot position")

	// ErrSlotExists is returned when the unit is already free.
	ErrSlotExists = errors.New("availability: slot already exists")

	// ErrSlotConflict is returned when the unit overlaps an existing booking.
	ErrSlotConflict = errors.New("availability: slot overlaps an existing booking")
)
