package bulk_availability

import "errors"

var (
	// ErrRoleNotAllowed is returned when a non-developer runs the generator.
	ErrRoleNotAllowed = errors.New("bulk_availability: only the developer may generate availability")

	// ErrWindowTooShort is returned when the clamped daily window is shorter
	// than one elementary unit.
	ErrWindowTooShort = errors.New("bulk_availability: time window must be at least 30 minutes")

	// ErrInvalidInput is returned for malformed date ranges.
	ErrInvalidInput = errors.New("bulk_availability: invalid input data")
)
