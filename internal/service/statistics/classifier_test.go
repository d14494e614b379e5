package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

func clockAt(hour, minute int) time.Time {
	return time.Date(2024, 1, 15, hour, minute, 0, 0, time.UTC)
}

func punchAt(inHour, inMinute, outHour, outMinute int) punch.Punch {
	clockOut := clockAt(outHour, outMinute)
	minutes := int(clockOut.Sub(clockAt(inHour, inMinute)).Minutes())
	return punch.Punch{
		ID:            "punch-1",
		EmployeeID:    "100000000001",
		Date:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ClockIn:       clockAt(inHour, inMinute),
		ClockOut:      &clockOut,
		WorkedMinutes: &minutes,
	}
}

func TestClassifyPunch_WithinToleranceIsPerfect(t *testing.T) {
	t.Parallel()

	classification, ok := ClassifyPunch(punchAt(8, 5, 16, 0), DefaultPolicy())
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryPerfect, classification.Category)
	assert.Equal(t, 5, classification.LatenessMinutes)
	assert.Equal(t, 0, classification.EarlyDepartureMinutes)
	assert.True(t, classification.OnTimeIn)
	assert.True(t, classification.OnTimeOut)
}

func TestClassifyPunch_EarlyArrivalClampsToZero(t *testing.T) {
	t.Parallel()

	classification, ok := ClassifyPunch(punchAt(7, 30, 17, 0), DefaultPolicy())
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryPerfect, classification.Category)
	assert.Equal(t, 0, classification.LatenessMinutes)
	assert.Equal(t, 0, classification.EarlyDepartureMinutes)
}

func TestClassifyPunch_LateButWithinThirtyIsAcceptable(t *testing.T) {
	t.Parallel()

	classification, ok := ClassifyPunch(punchAt(8, 25, 16, 0), DefaultPolicy())
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryAcceptable, classification.Category)
	assert.Equal(t, 25, classification.LatenessMinutes)
	assert.False(t, classification.OnTimeIn)
	assert.True(t, classification.OnTimeOut)
}

func TestClassifyPunch_AcceptableRequiresBothEndsWithinThirty(t *testing.T) {
	t.Parallel()

	// Lateness 15 is within 30, but leaving at 15:15 is 45 minutes early.
	classification, ok := ClassifyPunch(punchAt(8, 15, 15, 15), DefaultPolicy())
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryUnacceptable, classification.Category)
	assert.Equal(t, 15, classification.LatenessMinutes)
	assert.Equal(t, 45, classification.EarlyDepartureMinutes)
}

func TestClassifyPunch_BeyondThirtyIsUnacceptable(t *testing.T) {
	t.Parallel()

	classification, ok := ClassifyPunch(punchAt(8, 45, 16, 0), DefaultPolicy())
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryUnacceptable, classification.Category)
	assert.Equal(t, 45, classification.LatenessMinutes)
}

func TestClassifyPunch_ExactlyAtToleranceIsOnTime(t *testing.T) {
	t.Parallel()

	classification, ok := ClassifyPunch(punchAt(8, 10, 15, 50), DefaultPolicy())
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryPerfect, classification.Category)
	assert.True(t, classification.OnTimeIn)
	assert.True(t, classification.OnTimeOut)
}

func TestClassifyPunch_ExactlyAtThirtyIsAcceptable(t *testing.T) {
	t.Parallel()

	classification, ok := ClassifyPunch(punchAt(8, 30, 15, 30), DefaultPolicy())
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryAcceptable, classification.Category)
}

func TestClassifyPunch_MissingClockOutIsNotClassified(t *testing.T) {
	t.Parallel()

	p := punch.Punch{
		ID:         "punch-2",
		EmployeeID: "100000000001",
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ClockIn:    clockAt(8, 0),
	}

	_, ok := ClassifyPunch(p, DefaultPolicy())
	assert.False(t, ok)
}

func TestClassifyPunch_PerfectImpliesBothFlags(t *testing.T) {
	t.Parallel()

	for inMinute := 0; inMinute <= 60; inMinute += 5 {
		for outMinute := 0; outMinute <= 60; outMinute += 5 {
			classification, ok := ClassifyPunch(punchAt(8, inMinute, 15, outMinute), DefaultPolicy())
			require.True(t, ok)
			if classification.Category == statistics.CategoryPerfect {
				assert.True(t, classification.OnTimeIn)
				assert.True(t, classification.OnTimeOut)
			}
		}
	}
}

func TestClassifyPunch_CustomPolicyOverrides(t *testing.T) {
	t.Parallel()

	policy := SchedulePolicy{
		ExpectedClockIn:  time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		ExpectedClockOut: time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC),
		ToleranceMinutes: 0,
	}

	classification, ok := ClassifyPunch(punchAt(9, 1, 17, 0), policy)
	require.True(t, ok)

	assert.Equal(t, statistics.CategoryAcceptable, classification.Category)
	assert.Equal(t, 1, classification.LatenessMinutes)
	assert.False(t, classification.OnTimeIn)
	assert.True(t, classification.OnTimeOut)
}
