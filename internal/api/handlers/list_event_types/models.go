package list_event_types

import "github.com/m04kA/HRC-CalendarService/internal/domain"

// EventTypeResponse HTTP response model
type EventTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventTypesResponse HTTP response model
type EventTypesResponse struct {
	EventTypes []EventTypeResponse `json:"eventTypes"`
}

// FromDomainList конвертирует каталог типов событий в HTTP response.
func FromDomainList(types []domain.EventType) *EventTypesResponse {
	out := make([]EventTypeResponse, 0, len(types))
	for _, et := range types {
		out = append(out, EventTypeResponse{ID: et.ID, Name: et.Name})
	}
	return &EventTypesResponse{EventTypes: out}
}
