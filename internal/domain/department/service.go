package department

import "context"

// DepartmentService defines department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)

	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)

	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)

	// DeleteDepartment removes a department; fails when employees are
	// still assigned to it
	DeleteDepartment(ctx context.Context, id string) error

	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
}
