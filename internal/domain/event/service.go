package event

import "context"

// EventService defines company event operations
type EventService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (EventResponse, error)

	GetEvent(ctx context.Context, id string) (EventResponse, error)

	UpdateEvent(ctx context.Context, req UpdateEventRequest) (EventResponse, error)

	DeleteEvent(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]EventResponse, error)
}
