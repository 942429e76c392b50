package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking has the requested id.
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrRoleNotAllowed is returned when a non-developer tries to approve,
	// unapprove or decline.
	ErrRoleNotAllowed = errors.New("bookings: only the developer may change booking state")

	// ErrPastDate is returned for state changes on bookings of past days.
	ErrPastDate = errors.New("bookings: cannot change bookings in the past")

	// ErrInvalidStatus is returned for unknown approval statuses.
	ErrInvalidStatus = errors.New("bookings: invalid booking status")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("bookings: internal error")
)
