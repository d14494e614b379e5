package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0h 00min"},
		{5 * time.Minute, "0h 05min"},
		{3*time.Hour + 5*time.Minute, "3h 05min"},
		{56 * time.Hour, "56h 00min"},
		{-(2*time.Hour + 30*time.Minute), "2h 30min"},
		{59 * time.Second, "0h 00min"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.duration))
	}
}

func TestBuildEmployeeObservation_InsufficientHours(t *testing.T) {
	t.Parallel()

	stats, err := ComputeEmployeePeriodStats(testEmployee(),
		[]punch.Punch{punchOn(15, 8, 0, 16, 0)},
		statistics.PeriodWeek, date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.Contains(t, stats.Observation, "6 day(s) of absence out of 7 elapsed day(s)")
	assert.Contains(t, stats.Observation, "Insufficient hours")
	assert.Contains(t, stats.Observation, "Deficit: 48h 00min")
	assert.Contains(t, stats.Observation, "Regularity: PERFECT")
}

func TestBuildEmployeeObservation_NormalHoursOmitsAbsencePrefix(t *testing.T) {
	t.Parallel()

	var punches []punch.Punch
	for day := 15; day <= 21; day++ {
		punches = append(punches, punchOn(day, 8, 0, 16, 0))
	}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches,
		statistics.PeriodWeek, date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.NotContains(t, stats.Observation, "absence out of")
	assert.Contains(t, stats.Observation, "Hours on target")
	assert.Contains(t, stats.Observation, "Presence: 100.0%")
}

func TestBuildEmployeeObservation_Surplus(t *testing.T) {
	t.Parallel()

	var punches []punch.Punch
	for day := 15; day <= 21; day++ {
		punches = append(punches, punchOn(day, 6, 0, 16, 0))
	}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches,
		statistics.PeriodWeek, date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.Contains(t, stats.Observation, "Hours in surplus")
	assert.Contains(t, stats.Observation, "Excess: 14h 00min")
}

func TestBuildGlobalObservation_ContainsHeadlineNumbers(t *testing.T) {
	t.Parallel()

	stats := statistics.GlobalStatistics{
		Period: statistics.Period{
			Kind:        statistics.PeriodMonth,
			Start:       date(2024, time.January, 1),
			End:         date(2024, time.January, 31),
			ElapsedEnd:  date(2024, time.January, 20),
			ElapsedDays: 20,
		},
		TotalEmployees:       10,
		ActiveEmployees:      8,
		ActivityRate:         80,
		TotalDepartments:     3,
		ActiveDepartments:    2,
		TotalPunches:         120,
		ExpectedDaysPossible: 160,
		PresenceRate:         75,
		TotalWorked:          960 * time.Hour,
		PerfectCount:         90,
		AcceptableCount:      20,
		UnacceptableCount:    10,
		HoursStatus:          statistics.HoursInsufficient,
		HoursGap:             -320 * time.Hour,
		GapPercent:           -25,
	}

	observation := buildGlobalObservation(stats)

	assert.Contains(t, observation, "Global statistics for January 2024")
	assert.Contains(t, observation, "Days analyzed: 20")
	assert.Contains(t, observation, "Employees: 8/10 active (80.0%)")
	assert.Contains(t, observation, "Departments: 2/3 active")
	assert.Contains(t, observation, "Punches recorded: 120 of 160 expected (75.0%)")
	assert.Contains(t, observation, "Hours worked: 960h 00min")
	assert.Contains(t, observation, "90 perfect, 20 acceptable, 10 unacceptable")
}
