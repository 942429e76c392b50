package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking has the requested id.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")
)
