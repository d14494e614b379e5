package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	statisticsservice "github.com/pulsehr/attendance-backend-go/internal/service/statistics"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	defaults     statisticsservice.SchedulePolicy
}

func NewPunchService(punchRepo punch.PunchRepository, employeeRepo employee.EmployeeRepository, defaults statisticsservice.SchedulePolicy) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository: punchRepo,
		employeeRepo:    employeeRepo,
		defaults:        defaults,
	}
}

// CreatePunch implements punch.PunchService.
func (s *PunchServiceImpl) CreatePunch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	entity, err := toEntity(req.EmployeeID, req.Date, req.ClockIn, req.ClockOut, req.Remark)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	entity.ID = uuid.NewString()

	exists, err := s.PunchRepository.ExistsForDate(ctx, entity.EmployeeID, entity.Date)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to check existing punch: %w", err)
	}
	if exists {
		return punch.PunchResponse{}, punch.ErrDuplicatePunch
	}

	s.applyClassification(&entity, emp)

	created, err := s.PunchRepository.Create(ctx, entity)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}
	return toResponse(created), nil
}

// GetPunch implements punch.PunchService.
func (s *PunchServiceImpl) GetPunch(ctx context.Context, id string) (punch.PunchResponse, error) {
	found, err := s.PunchRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, punch.ErrPunchNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch: %w", err)
	}
	return toResponse(found), nil
}

// UpdatePunch implements punch.PunchService.
func (s *PunchServiceImpl) UpdatePunch(ctx context.Context, req punch.UpdatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	existing, err := s.PunchRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, punch.ErrPunchNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch: %w", err)
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	entity, err := toEntity(req.EmployeeID, req.Date, req.ClockIn, req.ClockOut, req.Remark)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	entity.ID = existing.ID
	entity.CreatedAt = existing.CreatedAt

	// Moving the punch to another day must not collide with an existing
	// record there.
	if !entity.Date.Equal(existing.Date) || entity.EmployeeID != existing.EmployeeID {
		exists, err := s.PunchRepository.ExistsForDate(ctx, entity.EmployeeID, entity.Date)
		if err != nil {
			return punch.PunchResponse{}, fmt.Errorf("failed to check existing punch: %w", err)
		}
		if exists {
			return punch.PunchResponse{}, punch.ErrDuplicatePunch
		}
	}

	s.applyClassification(&entity, emp)

	if err := s.PunchRepository.Update(ctx, entity); err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to update punch: %w", err)
	}
	return toResponse(entity), nil
}

// DeletePunch implements punch.PunchService.
func (s *PunchServiceImpl) DeletePunch(ctx context.Context, id string) error {
	if _, err := s.PunchRepository.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to get punch: %w", err)
	}
	if err := s.PunchRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	return nil
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	punches, total, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, toResponse(p))
	}
	return punch.ListPunchResponse{
		Punches:    responses,
		TotalItems: total,
	}, nil
}

// applyClassification recomputes the stored punctuality metrics against
// the employee's resolved schedule.
func (s *PunchServiceImpl) applyClassification(p *punch.Punch, emp employee.Employee) {
	policy := statisticsservice.ResolvePolicy(emp, s.defaults)

	if p.ClockOut != nil {
		minutes := int(p.ClockOut.Sub(p.ClockIn).Minutes())
		p.WorkedMinutes = &minutes
	} else {
		p.WorkedMinutes = nil
	}

	classification, ok := statisticsservice.ClassifyPunch(*p, policy)
	if !ok {
		p.OnTimeIn = false
		p.OnTimeOut = false
		p.PunctualityCategory = punch.CategoryUnclassified
		p.LatenessMinutes = 0
		p.EarlyDepartureMinutes = 0
		return
	}
	p.OnTimeIn = classification.OnTimeIn
	p.OnTimeOut = classification.OnTimeOut
	p.PunctualityCategory = string(classification.Category)
	p.LatenessMinutes = classification.LatenessMinutes
	p.EarlyDepartureMinutes = classification.EarlyDepartureMinutes
}

func toEntity(employeeID, dateStr, clockInStr string, clockOutStr, remark *string) (punch.Punch, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to parse date: %w", err)
	}
	clockIn, err := time.Parse("15:04", clockInStr)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to parse clock-in: %w", err)
	}

	entity := punch.Punch{
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    time.Date(date.Year(), date.Month(), date.Day(), clockIn.Hour(), clockIn.Minute(), 0, 0, time.UTC),
		Remark:     remark,
	}
	if clockOutStr != nil {
		clockOut, err := time.Parse("15:04", *clockOutStr)
		if err != nil {
			return punch.Punch{}, fmt.Errorf("failed to parse clock-out: %w", err)
		}
		at := time.Date(date.Year(), date.Month(), date.Day(), clockOut.Hour(), clockOut.Minute(), 0, 0, time.UTC)
		if !at.After(entity.ClockIn) {
			return punch.Punch{}, punch.ErrClockOutBeforeClockIn
		}
		entity.ClockOut = &at
	}
	return entity, nil
}

func toResponse(p punch.Punch) punch.PunchResponse {
	resp := punch.PunchResponse{
		ID:                    p.ID,
		EmployeeID:            p.EmployeeID,
		EmployeeName:          p.EmployeeName,
		Date:                  p.Date.Format("2006-01-02"),
		ClockIn:               p.ClockIn.Format("15:04"),
		Remark:                p.Remark,
		WorkedMinutes:         p.WorkedMinutes,
		OnTimeIn:              p.OnTimeIn,
		OnTimeOut:             p.OnTimeOut,
		PunctualityCategory:   p.PunctualityCategory,
		LatenessMinutes:       p.LatenessMinutes,
		EarlyDepartureMinutes: p.EarlyDepartureMinutes,
	}
	if p.ClockOut != nil {
		clockOut := p.ClockOut.Format("15:04")
		resp.ClockOut = &clockOut
	}
	return resp
}
