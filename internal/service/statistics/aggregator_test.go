package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:        "100000000001",
		FirstName: "Awa",
		LastName:  "Diop",
		Status:    employee.StatusActive,
	}
}

func punchOn(day, inHour, inMinute, outHour, outMinute int) punch.Punch {
	clockIn := time.Date(2024, 1, day, inHour, inMinute, 0, 0, time.UTC)
	clockOut := time.Date(2024, 1, day, outHour, outMinute, 0, 0, time.UTC)
	minutes := int(clockOut.Sub(clockIn).Minutes())
	return punch.Punch{
		EmployeeID:    "100000000001",
		Date:          time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		ClockIn:       clockIn,
		ClockOut:      &clockOut,
		WorkedMinutes: &minutes,
	}
}

func TestComputeEmployeePeriodStats_ZeroPunches(t *testing.T) {
	t.Parallel()

	// Full 22-day elapsed range, nothing recorded.
	stats, err := ComputeEmployeePeriodStats(testEmployee(), nil, statistics.PeriodMonth,
		date(2024, time.January, 10), date(2024, time.January, 22), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.DaysWorked)
	assert.Equal(t, 22, stats.DaysAbsent)
	assert.Equal(t, time.Duration(0), stats.TotalWorked)
	assert.Equal(t, statistics.HoursInsufficient, stats.HoursStatus)
	assert.Equal(t, statistics.RegularityAcceptable, stats.RegularityStatus)
	assert.Equal(t, 0.0, stats.RegularityRate)
	assert.Equal(t, 0.0, stats.PresenceRate)
	assert.Equal(t, 100.0, stats.AbsenceRate)
	assert.Equal(t, 22*8*time.Hour, stats.ExpectedHours)
}

func TestComputeEmployeePeriodStats_SinglePerfectWeek(t *testing.T) {
	t.Parallel()

	// Week of Jan 15: five 8-hour days, all inside tolerance.
	punches := []punch.Punch{
		punchOn(15, 8, 0, 16, 0),
		punchOn(16, 8, 5, 16, 0),
		punchOn(17, 7, 55, 16, 10),
		punchOn(18, 8, 0, 16, 0),
		punchOn(19, 8, 8, 16, 0),
	}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodWeek,
		date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.DaysWorked)
	assert.Equal(t, 2, stats.DaysAbsent)
	assert.Equal(t, 5, stats.PerfectCount)
	assert.Equal(t, 0, stats.AcceptableCount)
	assert.Equal(t, 0, stats.UnacceptableCount)
	assert.Equal(t, statistics.RegularityPerfect, stats.RegularityStatus)
	assert.Equal(t, 100.0, stats.RegularityRate)
	assert.InDelta(t, 71.43, stats.PresenceRate, 0.001)
	assert.InDelta(t, 28.57, stats.AbsenceRate, 0.001)
	assert.Equal(t, 56*time.Hour, stats.ExpectedHours)
}

func TestComputeEmployeePeriodStats_AveragesUseWorkedDays(t *testing.T) {
	t.Parallel()

	punches := []punch.Punch{
		punchOn(15, 8, 20, 16, 0), // 20 late, acceptable
		punchOn(16, 8, 0, 16, 0),  // perfect
	}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodWeek,
		date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.DaysWorked)
	assert.Equal(t, 1, stats.PerfectCount)
	assert.Equal(t, 1, stats.AcceptableCount)
	// 20 lateness minutes spread over 2 worked days.
	assert.Equal(t, 10.0, stats.AverageLatenessMinutes)
	// Regularity rate divides by worked days: 1 perfect of 2 days.
	assert.Equal(t, 50.0, stats.RegularityRate)
}

func TestComputeEmployeePeriodStats_MissingClockOutExcluded(t *testing.T) {
	t.Parallel()

	open := punch.Punch{
		EmployeeID: "100000000001",
		Date:       date(2024, time.January, 16),
		ClockIn:    time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC),
	}
	punches := []punch.Punch{punchOn(15, 8, 0, 16, 0), open}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodWeek,
		date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DaysWorked)
	assert.Equal(t, 6, stats.DaysAbsent)
	assert.Equal(t, 1, stats.PerfectCount+stats.AcceptableCount+stats.UnacceptableCount)
}

func TestComputeEmployeePeriodStats_PunchesOutsideElapsedRangeIgnored(t *testing.T) {
	t.Parallel()

	// Month of January, today is the 10th: the punch on the 20th has not
	// "happened" from the report's point of view.
	punches := []punch.Punch{
		punchOn(5, 8, 0, 16, 0),
		punchOn(20, 8, 0, 16, 0),
	}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodMonth,
		date(2024, time.January, 10), date(2024, time.January, 10), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DaysWorked)
	assert.Equal(t, 10, stats.Period.ElapsedDays)
}

func TestComputeEmployeePeriodStats_FutureMonthCountsNothing(t *testing.T) {
	t.Parallel()

	punches := []punch.Punch{punchOn(1, 8, 0, 16, 0)}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodMonth,
		date(2024, time.January, 15), date(2023, time.December, 1), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Period.ElapsedDays)
	assert.Equal(t, 0, stats.DaysWorked)
	assert.Equal(t, 0, stats.DaysAbsent)
	assert.Equal(t, 0.0, stats.PresenceRate)
	assert.Equal(t, 0.0, stats.AbsenceRate)
	assert.Equal(t, time.Duration(0), stats.ExpectedHours)
}

func TestComputeEmployeePeriodStats_HoursStatuses(t *testing.T) {
	t.Parallel()

	week := func(punches []punch.Punch) statistics.EmployeeStatistics {
		stats, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodWeek,
			date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
		require.NoError(t, err)
		return stats
	}

	// 7 elapsed days, 56h expected; 15% band is ±8h24min.
	var long []punch.Punch
	for day := 15; day <= 21; day++ {
		long = append(long, punchOn(day, 6, 0, 16, 0)) // 10h each, 70h total
	}
	assert.Equal(t, statistics.HoursSurplus, week(long).HoursStatus)

	var normal []punch.Punch
	for day := 15; day <= 21; day++ {
		normal = append(normal, punchOn(day, 8, 0, 16, 0)) // 8h each, 56h total
	}
	assert.Equal(t, statistics.HoursNormal, week(normal).HoursStatus)

	short := []punch.Punch{punchOn(15, 8, 0, 16, 0)} // 8h of 56h
	assert.Equal(t, statistics.HoursInsufficient, week(short).HoursStatus)
}

func TestComputeEmployeePeriodStats_ToleranceMonotonicity(t *testing.T) {
	t.Parallel()

	punches := []punch.Punch{
		punchOn(15, 8, 12, 16, 0),
		punchOn(16, 8, 25, 16, 0),
		punchOn(17, 8, 0, 16, 0),
	}

	rank := map[statistics.RegularityStatus]int{
		statistics.RegularityUnacceptable: 0,
		statistics.RegularityAcceptable:   1,
		statistics.RegularityPerfect:      2,
	}

	emp := testEmployee()
	previous := -1
	for _, tolerance := range []int{0, 5, 10, 15, 30} {
		tol := tolerance
		emp.ToleranceMinutes = &tol
		stats, err := ComputeEmployeePeriodStats(emp, punches, statistics.PeriodWeek,
			date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rank[stats.RegularityStatus], previous,
			"regularity must not degrade as tolerance widens (tolerance=%d)", tolerance)
		previous = rank[stats.RegularityStatus]
	}
}

func TestComputeEmployeePeriodStats_Idempotent(t *testing.T) {
	t.Parallel()

	punches := []punch.Punch{
		punchOn(15, 8, 20, 16, 0),
		punchOn(16, 8, 0, 15, 0),
	}

	first, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodWeek,
		date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)
	second, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodWeek,
		date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeEmployeePeriodStats_DaysAbsentNeverNegative(t *testing.T) {
	t.Parallel()

	// Two punches on distinct days within a single elapsed day cannot
	// happen, but duplicate dates collapsing to one worked day can.
	punches := []punch.Punch{
		punchOn(15, 8, 0, 12, 0),
		punchOn(15, 13, 0, 16, 0),
	}

	stats, err := ComputeEmployeePeriodStats(testEmployee(), punches, statistics.PeriodWeek,
		date(2024, time.January, 17), date(2024, time.January, 21), DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DaysWorked)
	assert.GreaterOrEqual(t, stats.DaysAbsent, 0)
}

func TestRegularityStatus_Thresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                            string
		perfect, acceptable, unacceptable int
		want                            statistics.RegularityStatus
	}{
		{"no classified punches defaults to acceptable", 0, 0, 0, statistics.RegularityAcceptable},
		{"eighty percent perfect", 8, 1, 1, statistics.RegularityPerfect},
		{"sixty percent perfect", 6, 0, 4, statistics.RegularityAcceptable},
		{"ninety percent combined", 5, 4, 1, statistics.RegularityAcceptable},
		{"below every threshold", 2, 2, 6, statistics.RegularityUnacceptable},
		{"all perfect", 5, 0, 0, statistics.RegularityPerfect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, regularityStatus(tt.perfect, tt.acceptable, tt.unacceptable))
		})
	}
}
