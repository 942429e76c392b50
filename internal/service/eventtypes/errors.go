package eventtypes

import "errors"

var (
	// ErrNameRequired is returned when the trimmed name is empty.
	ErrNameRequired = errors.New("eventtypes: name required")

	// ErrNameTooLong is returned when the name exceeds the length bound.
	ErrNameTooLong = errors.New("eventtypes: name too long")

	// ErrAlreadyExists is returned on a case-insensitive duplicate.
	ErrAlreadyExists = errors.New("eventtypes: event type already exists")

	// ErrInternal is returned for unexpected repository failures.
	ErrInternal = errors.New("eventtypes: internal error")
)
