package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepo,
		employeeRepo:    employeeRepo,
	}
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Formats were checked by Validate.
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return toResponse(created), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveResponse, error) {
	found, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return toResponse(found), nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequest, status leave.Status) (leave.LeaveResponse, error) {
	existing, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now()
	existing.Status = status
	existing.DecidedBy = &req.DecidedBy
	existing.DecidedAt = &now

	if err := s.LeaveRepository.Update(ctx, existing); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	return toResponse(existing), nil
}

// DeleteLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) error {
	if _, err := s.LeaveRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to get leave request: %w", err)
	}
	if err := s.LeaveRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	return nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	leaves, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, toResponse(l))
	}
	return leave.ListLeaveResponse{
		Leaves:     responses,
		TotalItems: total,
	}, nil
}

func toResponse(l leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Type:         string(l.Type),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.Days(),
		Reason:       l.Reason,
		Status:       string(l.Status),
		DecidedBy:    l.DecidedBy,
	}
	if l.DecidedAt != nil {
		decidedAt := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}
