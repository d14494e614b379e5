package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, department Department) (Department, error)

	GetByID(ctx context.Context, id string) (Department, error)

	Update(ctx context.Context, department Department) error

	Delete(ctx context.Context, id string) error

	// List retrieves departments ordered by name; EmployeeCount is
	// populated from the employees table
	List(ctx context.Context) ([]Department, error)
}
