package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/department"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

type stubEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	s.byID[e.ID] = e
	return e, nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := s.byID[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (s *stubEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	s.byID[e.ID] = e
	return nil
}

func (s *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

func (s *stubEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	var all []employee.Employee
	for _, e := range s.byID {
		all = append(all, e)
	}
	return all, nil
}

func (s *stubEmployeeRepo) CountByStatus(_ context.Context) (int64, int64, int64, error) {
	return int64(len(s.byID)), int64(len(s.byID)), 0, nil
}

type stubPunchRepo struct {
	punches []punch.Punch
}

func (s *stubPunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	s.punches = append(s.punches, p)
	return p, nil
}

func (s *stubPunchRepo) GetByID(_ context.Context, _ string) (punch.Punch, error) {
	return punch.Punch{}, pgx.ErrNoRows
}

func (s *stubPunchRepo) Update(_ context.Context, _ punch.Punch) error { return nil }

func (s *stubPunchRepo) Delete(_ context.Context, _ string) error { return nil }

func (s *stubPunchRepo) List(_ context.Context, _ punch.PunchFilter) ([]punch.Punch, int64, error) {
	return s.punches, int64(len(s.punches)), nil
}

func (s *stubPunchRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	var matched []punch.Punch
	for _, p := range s.punches {
		if p.EmployeeID == employeeID && !p.Date.Before(from) && !p.Date.After(to) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *stubPunchRepo) ExistsForDate(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, nil
}

type stubDepartmentRepo struct {
	departments []department.Department
}

func (s *stubDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	s.departments = append(s.departments, d)
	return d, nil
}

func (s *stubDepartmentRepo) GetByID(_ context.Context, _ string) (department.Department, error) {
	return department.Department{}, pgx.ErrNoRows
}

func (s *stubDepartmentRepo) Update(_ context.Context, _ department.Department) error { return nil }

func (s *stubDepartmentRepo) Delete(_ context.Context, _ string) error { return nil }

func (s *stubDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	return s.departments, nil
}

type stubSnapshotRepo struct {
	employeeSnapshots []statistics.EmployeeStatistics
	globalSnapshots   []statistics.GlobalStatistics
	listedLimit       int
}

func (s *stubSnapshotRepo) UpsertEmployeeSnapshot(_ context.Context, stats statistics.EmployeeStatistics) error {
	s.employeeSnapshots = append(s.employeeSnapshots, stats)
	return nil
}

func (s *stubSnapshotRepo) ListEmployeeSnapshots(_ context.Context, employeeID string, _ statistics.PeriodKind, limit int) ([]statistics.EmployeeStatistics, error) {
	s.listedLimit = limit
	var matched []statistics.EmployeeStatistics
	for _, snapshot := range s.employeeSnapshots {
		if snapshot.EmployeeID == employeeID {
			matched = append(matched, snapshot)
		}
	}
	return matched, nil
}

func (s *stubSnapshotRepo) UpsertGlobalSnapshot(_ context.Context, stats statistics.GlobalStatistics) error {
	s.globalSnapshots = append(s.globalSnapshots, stats)
	return nil
}

func statisticsServiceFixture() (statistics.StatisticsService, *stubSnapshotRepo) {
	employeeRepo := &stubEmployeeRepo{byID: map[string]employee.Employee{
		"100000000001": {ID: "100000000001", FirstName: "Awa", LastName: "Diop", Status: employee.StatusActive},
	}}
	snapshots := &stubSnapshotRepo{}
	svc := NewStatisticsService(employeeRepo, &stubPunchRepo{}, &stubDepartmentRepo{}, snapshots, DefaultPolicy())
	return svc, snapshots
}

func TestGetEmployeeStatistics_PersistsSnapshot(t *testing.T) {
	t.Parallel()

	svc, snapshots := statisticsServiceFixture()

	resp, err := svc.GetEmployeeStatistics(context.Background(), statistics.EmployeeStatisticsRequest{
		EmployeeID:    "100000000001",
		PeriodKind:    "month",
		ReferenceDate: "2024-01-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "100000000001", resp.EmployeeID)
	assert.Equal(t, "Awa Diop", resp.EmployeeName)
	require.Len(t, snapshots.employeeSnapshots, 1)
	assert.Equal(t, "100000000001", snapshots.employeeSnapshots[0].EmployeeID)
}

func TestGetEmployeeStatistics_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := statisticsServiceFixture()

	_, err := svc.GetEmployeeStatistics(context.Background(), statistics.EmployeeStatisticsRequest{
		EmployeeID: "999999999999",
		PeriodKind: "month",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetEmployeeHistory_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := statisticsServiceFixture()

	_, err := svc.GetEmployeeHistory(context.Background(), "999999999999", statistics.PeriodMonth, 0)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetEmployeeHistory_UnknownPeriodKind(t *testing.T) {
	t.Parallel()

	svc, _ := statisticsServiceFixture()

	_, err := svc.GetEmployeeHistory(context.Background(), "100000000001", "quarter", 0)
	assert.ErrorIs(t, err, statistics.ErrUnknownPeriodKind)
}

func TestGetEmployeeHistory_DefaultLimit(t *testing.T) {
	t.Parallel()

	svc, snapshots := statisticsServiceFixture()
	snapshots.employeeSnapshots = []statistics.EmployeeStatistics{
		{EmployeeID: "100000000001"},
	}

	history, err := svc.GetEmployeeHistory(context.Background(), "100000000001", statistics.PeriodMonth, 0)
	require.NoError(t, err)

	assert.Len(t, history, 1)
	assert.Equal(t, 12, snapshots.listedLimit)
}

func TestParseReferenceDate(t *testing.T) {
	t.Parallel()

	parsed, err := parseReferenceDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), parsed)

	now, err := parseReferenceDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)

	_, err = parseReferenceDate("15/01/2024")
	assert.Error(t, err)
}
