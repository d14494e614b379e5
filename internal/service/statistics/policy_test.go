package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pulsehr/attendance-backend-go/internal/config"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
)

func TestDefaultPolicy(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	assert.Equal(t, 8, policy.ExpectedClockIn.Hour())
	assert.Equal(t, 16, policy.ExpectedClockOut.Hour())
	assert.Equal(t, 10, policy.ToleranceMinutes)
}

func TestPolicyFromConfig(t *testing.T) {
	t.Parallel()

	policy := PolicyFromConfig(config.ScheduleConfig{
		DefaultClockIn:   "09:30",
		DefaultClockOut:  "17:30",
		ToleranceMinutes: 5,
	})

	assert.Equal(t, 9, policy.ExpectedClockIn.Hour())
	assert.Equal(t, 30, policy.ExpectedClockIn.Minute())
	assert.Equal(t, 17, policy.ExpectedClockOut.Hour())
	assert.Equal(t, 5, policy.ToleranceMinutes)
}

func TestPolicyFromConfig_MalformedValuesFallBack(t *testing.T) {
	t.Parallel()

	policy := PolicyFromConfig(config.ScheduleConfig{
		DefaultClockIn:  "not-a-time",
		DefaultClockOut: "25:99",
	})

	assert.Equal(t, DefaultPolicy().ExpectedClockIn, policy.ExpectedClockIn)
	assert.Equal(t, DefaultPolicy().ExpectedClockOut, policy.ExpectedClockOut)
}

func TestResolvePolicy_EmployeeOverrides(t *testing.T) {
	t.Parallel()

	clockIn := time.Date(0, 1, 1, 7, 0, 0, 0, time.UTC)
	tolerance := 20
	emp := employee.Employee{
		ID:               "100000000001",
		ExpectedClockIn:  &clockIn,
		ToleranceMinutes: &tolerance,
	}

	policy := ResolvePolicy(emp, DefaultPolicy())

	assert.Equal(t, 7, policy.ExpectedClockIn.Hour())
	assert.Equal(t, 16, policy.ExpectedClockOut.Hour())
	assert.Equal(t, 20, policy.ToleranceMinutes)
}

func TestResolvePolicy_NoOverridesKeepsDefaults(t *testing.T) {
	t.Parallel()

	policy := ResolvePolicy(employee.Employee{ID: "100000000001"}, DefaultPolicy())
	assert.Equal(t, DefaultPolicy(), policy)
}
