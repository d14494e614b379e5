package punch

import "context"

// PunchService defines punch record operations. Punctuality metrics are
// computed at write time against the employee's resolved schedule.
type PunchService interface {
	CreatePunch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)

	GetPunch(ctx context.Context, id string) (PunchResponse, error)

	UpdatePunch(ctx context.Context, req UpdatePunchRequest) (PunchResponse, error)

	DeletePunch(ctx context.Context, id string) error

	ListPunches(ctx context.Context, filter PunchFilter) (ListPunchResponse, error)
}
