package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/event"
)

type EventServiceImpl struct {
	event.EventRepository
}

func NewEventService(eventRepo event.EventRepository) event.EventService {
	return &EventServiceImpl{EventRepository: eventRepo}
}

// CreateEvent implements event.EventService.
func (s *EventServiceImpl) CreateEvent(ctx context.Context, req event.CreateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	eventDate, _ := time.Parse("2006-01-02", req.EventDate)

	created, err := s.EventRepository.Create(ctx, event.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		EventDate:   eventDate,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return event.EventResponse{}, fmt.Errorf("failed to create event: %w", err)
	}
	return toResponse(created), nil
}

// GetEvent implements event.EventService.
func (s *EventServiceImpl) GetEvent(ctx context.Context, id string) (event.EventResponse, error) {
	found, err := s.EventRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.EventResponse{}, event.ErrEventNotFound
		}
		return event.EventResponse{}, fmt.Errorf("failed to get event: %w", err)
	}
	return toResponse(found), nil
}

// UpdateEvent implements event.EventService.
func (s *EventServiceImpl) UpdateEvent(ctx context.Context, req event.UpdateEventRequest) (event.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return event.EventResponse{}, err
	}

	existing, err := s.EventRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.EventResponse{}, event.ErrEventNotFound
		}
		return event.EventResponse{}, fmt.Errorf("failed to get event: %w", err)
	}

	eventDate, _ := time.Parse("2006-01-02", req.EventDate)
	existing.Title = req.Title
	existing.EventDate = eventDate
	existing.Location = req.Location
	existing.Description = req.Description

	if err := s.EventRepository.Update(ctx, existing); err != nil {
		return event.EventResponse{}, fmt.Errorf("failed to update event: %w", err)
	}
	return toResponse(existing), nil
}

// DeleteEvent implements event.EventService.
func (s *EventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.EventRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}
	if err := s.EventRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ListEvents implements event.EventService.
func (s *EventServiceImpl) ListEvents(ctx context.Context) ([]event.EventResponse, error) {
	events, err := s.EventRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]event.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

func toResponse(e event.Event) event.EventResponse {
	return event.EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		EventDate:   e.EventDate.Format("2006-01-02"),
		Location:    e.Location,
		Description: e.Description,
	}
}
