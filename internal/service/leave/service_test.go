package leave

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	byID map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{byID: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.byID[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.byID[id]
	if !ok {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	return request, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, request leave.LeaveRequest) error {
	f.byID[request.ID] = request
	return nil
}

func (f *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeLeaveRepo) List(_ context.Context, _ leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var all []leave.LeaveRequest
	for _, request := range f.byID {
		all = append(all, request)
	}
	return all, int64(len(all)), nil
}

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	var all []employee.Employee
	for _, e := range f.byID {
		all = append(all, e)
	}
	return all, nil
}

func (f *fakeEmployeeRepo) CountByStatus(_ context.Context) (int64, int64, int64, error) {
	return int64(len(f.byID)), int64(len(f.byID)), 0, nil
}

func testLeaveService() (leave.LeaveService, *fakeLeaveRepo) {
	leaveRepo := newFakeLeaveRepo()
	employeeRepo := &fakeEmployeeRepo{byID: map[string]employee.Employee{
		"100000000001": {ID: "100000000001", FirstName: "Awa", LastName: "Diop", Status: employee.StatusActive},
	}}
	return NewLeaveService(leaveRepo, employeeRepo), leaveRepo
}

func TestCreateLeaveRequest(t *testing.T) {
	t.Parallel()

	svc, _ := testLeaveService()

	created, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "100000000001",
		Type:       "annual",
		StartDate:  "2024-02-05",
		EndDate:    "2024-02-09",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, 5, created.Days)
}

func TestCreateLeaveRequest_UnknownEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := testLeaveService()

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "999999999999",
		Type:       "sick",
		StartDate:  "2024-02-05",
		EndDate:    "2024-02-05",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateLeaveRequest_EndBeforeStart(t *testing.T) {
	t.Parallel()

	svc, _ := testLeaveService()

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "100000000001",
		Type:       "annual",
		StartDate:  "2024-02-09",
		EndDate:    "2024-02-05",
	})
	assert.Error(t, err)
}

func TestApproveLeaveRequest(t *testing.T) {
	t.Parallel()

	svc, repo := testLeaveService()
	repo.byID["req-1"] = leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "100000000001",
		Type:       leave.TypeAnnual,
		StartDate:  time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}

	decided, err := svc.ApproveLeaveRequest(context.Background(), leave.DecideLeaveRequest{
		ID:        "req-1",
		DecidedBy: "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "admin-1", *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)
}

func TestDecideLeaveRequest_AlreadyProcessed(t *testing.T) {
	t.Parallel()

	svc, repo := testLeaveService()
	repo.byID["req-1"] = leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "100000000001",
		Type:       leave.TypeSick,
		StartDate:  time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}

	_, err := svc.RejectLeaveRequest(context.Background(), leave.DecideLeaveRequest{
		ID:        "req-1",
		DecidedBy: "admin-1",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDecideLeaveRequest_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := testLeaveService()

	_, err := svc.ApproveLeaveRequest(context.Background(), leave.DecideLeaveRequest{
		ID:        "missing",
		DecidedBy: "admin-1",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
