package event

import "time"

type Event struct {
	ID          string
	Title       string
	EventDate   time.Time
	Location    *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
