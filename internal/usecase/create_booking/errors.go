package create_booking

import "errors"

var (
	// ErrRoleNotAllowed is returned when the requester is not an HR role.
	ErrRoleNotAllowed = errors.New("create_booking: only HR roles may book")

	// ErrPastDate is returned when the target day is before today.
	ErrPastDate = errors.New("create_booking: cannot book in the past")

	// ErrUnknownEventType is returned when the label is not in the catalog.
	ErrUnknownEventType = errors.New("create_booking: unknown event type")

	// ErrInvalidInput is returned for malformed requests: bad grid cell,
	// unsupported duration or blank contact fields.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInsufficientAvailability is returned when the requested duration is
	// not covered by contiguous free units.
	ErrInsufficientAvailability = errors.New("create_booking: not enough contiguous free time")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("create_booking: internal error")
)
