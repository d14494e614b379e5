package event

import "context"

type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)

	GetByID(ctx context.Context, id string) (Event, error)

	Update(ctx context.Context, event Event) error

	Delete(ctx context.Context, id string) error

	// List retrieves events ordered by event date descending
	List(ctx context.Context) ([]Event, error)
}
