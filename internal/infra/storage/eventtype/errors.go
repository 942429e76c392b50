package eventtype

import "errors"

var (
	// ErrEventTypeNotFound is returned when no catalog entry matches the name.
	ErrEventTypeNotFound = errors.New("eventtype.repository: event type not found")

	// ErrEventTypeExists is returned on a case-insensitive name collision.
	ErrEventTypeExists = errors.New("eventtype.repository: event type already exists")
)
