package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)

	GetByID(ctx context.Context, id string) (Punch, error)

	Update(ctx context.Context, punch Punch) error

	Delete(ctx context.Context, id string) error

	// List retrieves punch records with filters and pagination
	List(ctx context.Context, filter PunchFilter) ([]Punch, int64, error)

	// ListByEmployeeAndRange retrieves an employee's punches with
	// date in [from, to], ordered by date
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)

	// ExistsForDate reports whether the employee already punched on the
	// given calendar day
	ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
