package leave

import "context"

// LeaveService defines leave request operations
type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	GetLeaveRequest(ctx context.Context, id string) (LeaveResponse, error)

	// ApproveLeaveRequest transitions a pending request to approved
	ApproveLeaveRequest(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// RejectLeaveRequest transitions a pending request to rejected
	RejectLeaveRequest(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	DeleteLeaveRequest(ctx context.Context, id string) error

	ListLeaveRequests(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
}
