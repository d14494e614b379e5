package event

import (
	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

type CreateEventRequest struct {
	Title       string  `json:"title"`
	EventDate   string  `json:"event_date"` // "YYYY-MM-DD"
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if _, ok := validator.IsValidDate(r.EventDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "event_date",
			Message: "event date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEventRequest struct {
	ID          string  `json:"-"`
	Title       string  `json:"title"`
	EventDate   string  `json:"event_date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

func (r *UpdateEventRequest) Validate() error {
	create := CreateEventRequest{
		Title:       r.Title,
		EventDate:   r.EventDate,
		Location:    r.Location,
		Description: r.Description,
	}
	return create.Validate()
}

type EventResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	EventDate   string  `json:"event_date"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}
