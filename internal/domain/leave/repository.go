package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	Update(ctx context.Context, request LeaveRequest) error

	Delete(ctx context.Context, id string) error

	// List retrieves leave requests with filters and pagination
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
}
