package postgresql

import (
	"context"
	"fmt"

	"github.com/pulsehr/attendance-backend-go/internal/domain/event"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/database"
)

type eventRepositoryImpl struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) event.EventRepository {
	return &eventRepositoryImpl{db: db}
}

// Create implements event.EventRepository.
func (r *eventRepositoryImpl) Create(ctx context.Context, newEvent event.Event) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO events (id, title, event_date, location, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, event_date, location, description, created_at, updated_at
	`

	var created event.Event
	err := q.QueryRow(ctx, query,
		newEvent.ID, newEvent.Title, newEvent.EventDate, newEvent.Location, newEvent.Description,
	).Scan(
		&created.ID, &created.Title, &created.EventDate, &created.Location,
		&created.Description, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return event.Event{}, err
	}

	return created, nil
}

// GetByID implements event.EventRepository.
func (r *eventRepositoryImpl) GetByID(ctx context.Context, id string) (event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, event_date, location, description, created_at, updated_at
		FROM events
		WHERE id = $1
	`

	var found event.Event
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Title, &found.EventDate, &found.Location,
		&found.Description, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		return event.Event{}, err
	}

	return found, nil
}

// Update implements event.EventRepository.
func (r *eventRepositoryImpl) Update(ctx context.Context, e event.Event) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE events
		SET title = $2, event_date = $3, location = $4, description = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, e.ID, e.Title, e.EventDate, e.Location, e.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update failed, no rows affected")
	}

	return nil
}

// Delete implements event.EventRepository.
func (r *eventRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete failed, no rows affected")
	}

	return nil
}

// List implements event.EventRepository.
func (r *eventRepositoryImpl) List(ctx context.Context) ([]event.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, event_date, location, description, created_at, updated_at
		FROM events
		ORDER BY event_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var e event.Event
		err := rows.Scan(
			&e.ID, &e.Title, &e.EventDate, &e.Location,
			&e.Description, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
