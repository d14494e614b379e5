package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/department"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
	employeeRepo employee.EmployeeRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository, employeeRepo employee.EmployeeRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
		employeeRepo:         employeeRepo,
	}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Manager:     req.Manager,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}
	return toResponse(created), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	found, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	return toResponse(found), nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	existing.Name = req.Name
	existing.Manager = req.Manager
	existing.Description = req.Description
	existing.Location = req.Location

	if err := s.DepartmentRepository.Update(ctx, existing); err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}
	return toResponse(existing), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}

	_, total, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{DepartmentID: id, Page: 1, Limit: 1})
	if err != nil {
		return fmt.Errorf("failed to count department members: %w", err)
	}
	if total > 0 {
		return department.ErrDepartmentNotEmpty
	}

	if err := s.DepartmentRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, toResponse(d))
	}
	return responses, nil
}

func toResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Manager:       d.Manager,
		Description:   d.Description,
		Location:      d.Location,
		EmployeeCount: d.EmployeeCount,
	}
}
