package freeslot

import "errors"

var (
	// ErrSlotExists is returned when adding a unit that is already free.
	ErrSlotExists = errors.New("freeslot.repository: slot already exists")

	// ErrRunNotAvailable is returned when a contiguous run cannot be consumed
	// because at least one of its units is not free.
	ErrRunNotAvailable = errors.New("freeslot.repository: contiguous run not available")
)
