package statistics

import (
	"time"

	"github.com/pulsehr/attendance-backend-go/internal/config"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
)

// SchedulePolicy is an employee's resolved expected schedule. It is always
// fully populated: resolution fills gaps from the company-wide defaults, so
// the aggregation code never deals with missing schedule fields.
type SchedulePolicy struct {
	ExpectedClockIn  time.Time
	ExpectedClockOut time.Time
	ToleranceMinutes int
}

// DefaultPolicy returns the built-in 08:00-16:00 schedule with a 10 minute
// tolerance margin.
func DefaultPolicy() SchedulePolicy {
	return SchedulePolicy{
		ExpectedClockIn:  time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC),
		ExpectedClockOut: time.Date(0, 1, 1, 16, 0, 0, 0, time.UTC),
		ToleranceMinutes: 10,
	}
}

// PolicyFromConfig parses the configured default schedule. Malformed
// config values fall back to the built-in defaults; config validation
// should have caught them earlier.
func PolicyFromConfig(cfg config.ScheduleConfig) SchedulePolicy {
	policy := DefaultPolicy()
	if clockIn, err := time.Parse("15:04", cfg.DefaultClockIn); err == nil {
		policy.ExpectedClockIn = clockIn
	}
	if clockOut, err := time.Parse("15:04", cfg.DefaultClockOut); err == nil {
		policy.ExpectedClockOut = clockOut
	}
	if cfg.ToleranceMinutes >= 0 {
		policy.ToleranceMinutes = cfg.ToleranceMinutes
	}
	return policy
}

// ResolvePolicy applies the employee's schedule overrides on top of the
// defaults. Pure lookup, no failure modes.
func ResolvePolicy(e employee.Employee, defaults SchedulePolicy) SchedulePolicy {
	policy := defaults
	if e.ExpectedClockIn != nil {
		policy.ExpectedClockIn = *e.ExpectedClockIn
	}
	if e.ExpectedClockOut != nil {
		policy.ExpectedClockOut = *e.ExpectedClockOut
	}
	if e.ToleranceMinutes != nil {
		policy.ToleranceMinutes = *e.ToleranceMinutes
	}
	return policy
}
