package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/department"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   employeeRepo,
		DepartmentRepository: departmentRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.ID); err == nil {
		return employee.EmployeeResponse{}, employee.ErrNationalIDExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing employee: %w", err)
	}

	entity, err := toEntity(req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return ToResponse(found), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.DepartmentID != existing.DepartmentID {
		if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get department: %w", err)
		}
	}

	entity, err := toEntity(employee.CreateEmployeeRequest{
		ID:                 req.ID,
		Title:              req.Title,
		RegistrationNumber: req.RegistrationNumber,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		Position:           req.Position,
		DepartmentID:       req.DepartmentID,
		Status:             req.Status,
		BaseSalary:         req.BaseSalary,
		ExpectedClockIn:    req.ExpectedClockIn,
		ExpectedClockOut:   req.ExpectedClockOut,
		ToleranceMinutes:   req.ToleranceMinutes,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	entity.CreatedAt = existing.CreatedAt

	if err := s.EmployeeRepository.Update(ctx, entity); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}
	return ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToResponse(e))
	}
	return employee.ListEmployeeResponse{
		Employees:  responses,
		TotalItems: total,
	}, nil
}

// GetHeadcount implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetHeadcount(ctx context.Context) (employee.HeadcountResponse, error) {
	total, active, inactive, err := s.EmployeeRepository.CountByStatus(ctx)
	if err != nil {
		return employee.HeadcountResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}
	return employee.HeadcountResponse{
		TotalEmployees:    total,
		ActiveEmployees:   active,
		InactiveEmployees: inactive,
	}, nil
}

func toEntity(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	status := employee.Status(req.Status)
	if req.Status == "" {
		status = employee.StatusActive
	}

	entity := employee.Employee{
		ID:                 req.ID,
		Title:              employee.Title(req.Title),
		RegistrationNumber: req.RegistrationNumber,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		Position:           req.Position,
		DepartmentID:       req.DepartmentID,
		Status:             status,
		BaseSalary:         req.BaseSalary,
		ToleranceMinutes:   req.ToleranceMinutes,
	}

	// Validation already checked the formats.
	if req.ExpectedClockIn != nil {
		clockIn, err := time.Parse("15:04", *req.ExpectedClockIn)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse expected clock-in: %w", err)
		}
		entity.ExpectedClockIn = &clockIn
	}
	if req.ExpectedClockOut != nil {
		clockOut, err := time.Parse("15:04", *req.ExpectedClockOut)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse expected clock-out: %w", err)
		}
		entity.ExpectedClockOut = &clockOut
	}

	return entity, nil
}

// ToResponse maps an employee entity to its transport shape.
func ToResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                 e.ID,
		Title:              string(e.Title),
		RegistrationNumber: e.RegistrationNumber,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		Email:              e.Email,
		Phone:              e.Phone,
		Position:           e.Position,
		DepartmentID:       e.DepartmentID,
		DepartmentName:     e.DepartmentName,
		Status:             string(e.Status),
		BaseSalary:         e.BaseSalary,
		ToleranceMinutes:   e.ToleranceMinutes,
	}
	if e.ExpectedClockIn != nil {
		clockIn := e.ExpectedClockIn.Format("15:04")
		resp.ExpectedClockIn = &clockIn
	}
	if e.ExpectedClockOut != nil {
		clockOut := e.ExpectedClockOut.Format("15:04")
		resp.ExpectedClockOut = &clockOut
	}
	return resp
}
