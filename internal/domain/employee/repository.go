package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	Update(ctx context.Context, employee Employee) error

	Delete(ctx context.Context, id string) error

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListAll retrieves every employee without pagination, used by the
	// global statistics aggregation
	ListAll(ctx context.Context) ([]Employee, error)

	// CountByStatus returns (total, active, inactive) headcounts
	CountByStatus(ctx context.Context) (int64, int64, int64, error)
}
