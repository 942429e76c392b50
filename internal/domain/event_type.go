package domain

// EventType is a label catalog entry. Bookings reference it by name only, so
// catalog changes never cascade into booking history.
type EventType struct {
	ID   string
	Name string
}
