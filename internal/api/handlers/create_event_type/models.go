package create_event_type

// CreateEventTypeRequest HTTP request model
type CreateEventTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

// EventTypeResponse HTTP response model
type EventTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
