package statistics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/pulsehr/attendance-backend-go/internal/domain/department"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

type StatisticsServiceImpl struct {
	employee.EmployeeRepository
	punch.PunchRepository
	department.DepartmentRepository
	snapshots statistics.SnapshotRepository
	defaults  SchedulePolicy
}

func NewStatisticsService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
	departmentRepo department.DepartmentRepository,
	snapshotRepo statistics.SnapshotRepository,
	defaults SchedulePolicy,
) statistics.StatisticsService {
	return &StatisticsServiceImpl{
		EmployeeRepository:   employeeRepo,
		PunchRepository:      punchRepo,
		DepartmentRepository: departmentRepo,
		snapshots:            snapshotRepo,
		defaults:             defaults,
	}
}

func parseReferenceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse reference date: %w", err)
	}
	return parsed, nil
}

// GetEmployeeStatistics implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetEmployeeStatistics(ctx context.Context, req statistics.EmployeeStatisticsRequest) (statistics.EmployeeStatisticsResponse, error) {
	if err := req.Validate(); err != nil {
		return statistics.EmployeeStatisticsResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return statistics.EmployeeStatisticsResponse{}, employee.ErrEmployeeNotFound
		}
		return statistics.EmployeeStatisticsResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	kind := statistics.PeriodKind(req.PeriodKind)
	reference, err := parseReferenceDate(req.ReferenceDate)
	if err != nil {
		return statistics.EmployeeStatisticsResponse{}, err
	}
	today := time.Now()

	period, err := ResolvePeriod(kind, reference, today)
	if err != nil {
		return statistics.EmployeeStatisticsResponse{}, err
	}

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, emp.ID, period.Start, period.ElapsedEnd)
	if err != nil {
		return statistics.EmployeeStatisticsResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	stats, err := ComputeEmployeePeriodStats(emp, punches, kind, reference, today, s.defaults)
	if err != nil {
		return statistics.EmployeeStatisticsResponse{}, err
	}
	stats.ComputedAt = time.Now()

	// Snapshots are derived data; a failed upsert must not fail the read.
	if err := s.snapshots.UpsertEmployeeSnapshot(ctx, stats); err != nil {
		slog.Error("failed to persist employee statistics snapshot", "employee_id", emp.ID, "error", err)
	}

	return toEmployeeStatisticsResponse(stats, employeeDisplayName(emp)), nil
}

// GetGlobalStatistics implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetGlobalStatistics(ctx context.Context, req statistics.GlobalStatisticsRequest) (statistics.GlobalStatisticsResponse, error) {
	if err := req.Validate(); err != nil {
		return statistics.GlobalStatisticsResponse{}, err
	}

	reference, err := parseReferenceDate(req.ReferenceDate)
	if err != nil {
		return statistics.GlobalStatisticsResponse{}, err
	}
	today := time.Now()

	period, err := ResolvePeriod(statistics.PeriodMonth, reference, today)
	if err != nil {
		return statistics.GlobalStatisticsResponse{}, err
	}

	employees, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return statistics.GlobalStatisticsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return statistics.GlobalStatisticsResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	// Per-employee computations are independent; fetch punches
	// concurrently and assemble the map under a lock.
	punchesByEmployee := make(map[string][]punch.Punch, len(employees))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, emp := range employees {
		g.Go(func() error {
			punches, err := s.PunchRepository.ListByEmployeeAndRange(gCtx, emp.ID, period.Start, period.ElapsedEnd)
			if err != nil {
				return fmt.Errorf("failed to list punches for employee %s: %w", emp.ID, err)
			}
			mu.Lock()
			punchesByEmployee[emp.ID] = punches
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return statistics.GlobalStatisticsResponse{}, err
	}

	stats, err := ComputeGlobalPeriodStats(employees, punchesByEmployee, departments, reference, today, s.defaults)
	if err != nil {
		return statistics.GlobalStatisticsResponse{}, err
	}
	stats.ComputedAt = time.Now()

	if err := s.snapshots.UpsertGlobalSnapshot(ctx, stats); err != nil {
		slog.Error("failed to persist global statistics snapshot", "period_start", stats.Period.Start, "error", err)
	}

	return toGlobalStatisticsResponse(stats), nil
}

// GetEmployeeHistory implements statistics.StatisticsService.
func (s *StatisticsServiceImpl) GetEmployeeHistory(ctx context.Context, employeeID string, kind statistics.PeriodKind, limit int) ([]statistics.EmployeeStatisticsResponse, error) {
	if !kind.Valid() {
		return nil, statistics.ErrUnknownPeriodKind
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if limit <= 0 {
		limit = 12
	}

	snapshots, err := s.snapshots.ListEmployeeSnapshots(ctx, employeeID, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics snapshots: %w", err)
	}

	responses := make([]statistics.EmployeeStatisticsResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		responses = append(responses, toEmployeeStatisticsResponse(snapshot, ""))
	}
	return responses, nil
}

func employeeDisplayName(e employee.Employee) string {
	return e.FirstName + " " + e.LastName
}

func toPeriodResponse(p statistics.Period) statistics.PeriodResponse {
	return statistics.PeriodResponse{
		Kind:        string(p.Kind),
		Start:       p.Start.Format("2006-01-02"),
		End:         p.End.Format("2006-01-02"),
		ElapsedEnd:  p.ElapsedEnd.Format("2006-01-02"),
		ElapsedDays: p.ElapsedDays,
	}
}

func toEmployeeStatisticsResponse(s statistics.EmployeeStatistics, name string) statistics.EmployeeStatisticsResponse {
	return statistics.EmployeeStatisticsResponse{
		EmployeeID:                   s.EmployeeID,
		EmployeeName:                 name,
		Period:                       toPeriodResponse(s.Period),
		TotalWorkedMinutes:           int(s.TotalWorked.Minutes()),
		TotalWorked:                  FormatDuration(s.TotalWorked),
		DaysWorked:                   s.DaysWorked,
		DaysAbsent:                   s.DaysAbsent,
		AverageDailyMinutes:          int(s.AverageDaily.Minutes()),
		PerfectCount:                 s.PerfectCount,
		AcceptableCount:              s.AcceptableCount,
		UnacceptableCount:            s.UnacceptableCount,
		AverageLatenessMinutes:       s.AverageLatenessMinutes,
		AverageEarlyDepartureMinutes: s.AverageEarlyDepartureMinutes,
		RegularityStatus:             string(s.RegularityStatus),
		RegularityRate:               s.RegularityRate,
		PresenceRate:                 s.PresenceRate,
		AbsenceRate:                  s.AbsenceRate,
		ExpectedHoursMinutes:         int(s.ExpectedHours.Minutes()),
		ExpectedHours:                FormatDuration(s.ExpectedHours),
		HoursGapMinutes:              int(s.HoursGap.Minutes()),
		GapPercent:                   s.GapPercent,
		HoursStatus:                  string(s.HoursStatus),
		Observation:                  s.Observation,
	}
}

func toGlobalStatisticsResponse(s statistics.GlobalStatistics) statistics.GlobalStatisticsResponse {
	departments := make([]statistics.DepartmentRollupResponse, 0, len(s.Departments))
	for _, d := range s.Departments {
		departments = append(departments, statistics.DepartmentRollupResponse{
			DepartmentID:       d.DepartmentID,
			Name:               d.Name,
			EmployeeCount:      d.EmployeeCount,
			ActiveEmployees:    d.ActiveEmployees,
			PunchCount:         d.PunchCount,
			TotalWorkedMinutes: int(d.TotalWorked.Minutes()),
			Active:             d.Active,
		})
	}

	return statistics.GlobalStatisticsResponse{
		Period:               toPeriodResponse(s.Period),
		TotalEmployees:       s.TotalEmployees,
		ActiveEmployees:      s.ActiveEmployees,
		ActivityRate:         s.ActivityRate,
		TotalDepartments:     s.TotalDepartments,
		ActiveDepartments:    s.ActiveDepartments,
		Departments:          departments,
		TotalPunches:         s.TotalPunches,
		ExpectedDaysPossible: s.ExpectedDaysPossible,
		TotalDaysWorked:      s.TotalDaysWorked,
		TotalAbsences:        s.TotalAbsences,
		PerfectCount:         s.PerfectCount,
		AcceptableCount:      s.AcceptableCount,
		UnacceptableCount:    s.UnacceptableCount,
		PerfectRate:          s.PerfectRate,
		AcceptableRate:       s.AcceptableRate,
		UnacceptableRate:     s.UnacceptableRate,
		TotalWorkedMinutes:   int(s.TotalWorked.Minutes()),
		TotalWorked:          FormatDuration(s.TotalWorked),
		AverageDailyMinutes:  int(s.AverageDaily.Minutes()),
		RegularityStatus:     string(s.RegularityStatus),
		PresenceRate:         s.PresenceRate,
		AbsenceRate:          s.AbsenceRate,
		ExpectedHoursMinutes: int(s.ExpectedHours.Minutes()),
		HoursGapMinutes:      int(s.HoursGap.Minutes()),
		GapPercent:           s.GapPercent,
		HoursStatus:          string(s.HoursStatus),
		Observation:          s.Observation,
	}
}
