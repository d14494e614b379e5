package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod_WeekStartsOnMonday(t *testing.T) {
	t.Parallel()

	// 2024-01-17 is a Wednesday.
	period, err := ResolvePeriod(statistics.PeriodWeek, date(2024, time.January, 17), date(2024, time.January, 17))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 15), period.Start)
	assert.Equal(t, date(2024, time.January, 21), period.End)
	assert.Equal(t, period.End, period.ElapsedEnd)
	assert.Equal(t, 7, period.ElapsedDays)
}

func TestResolvePeriod_WeekSundayBelongsToPrecedingMonday(t *testing.T) {
	t.Parallel()

	// 2024-01-21 is a Sunday; its week started Monday the 15th.
	period, err := ResolvePeriod(statistics.PeriodWeek, date(2024, time.January, 21), date(2024, time.January, 21))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 15), period.Start)
	assert.Equal(t, date(2024, time.January, 21), period.End)
}

func TestResolvePeriod_WeekIsAlwaysFullyElapsed(t *testing.T) {
	t.Parallel()

	// Today is mid-week; the week still counts all 7 days.
	period, err := ResolvePeriod(statistics.PeriodWeek, date(2024, time.January, 17), date(2024, time.January, 16))
	require.NoError(t, err)

	assert.Equal(t, 7, period.ElapsedDays)
	assert.Equal(t, period.End, period.ElapsedEnd)
}

func TestResolvePeriod_MonthInProgressCapsAtToday(t *testing.T) {
	t.Parallel()

	period, err := ResolvePeriod(statistics.PeriodMonth, date(2024, time.January, 15), date(2024, time.January, 20))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 1), period.Start)
	assert.Equal(t, date(2024, time.January, 31), period.End)
	assert.Equal(t, date(2024, time.January, 20), period.ElapsedEnd)
	assert.Equal(t, 20, period.ElapsedDays)
}

func TestResolvePeriod_PastMonthIsFullyElapsed(t *testing.T) {
	t.Parallel()

	period, err := ResolvePeriod(statistics.PeriodMonth, date(2024, time.February, 10), date(2024, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.February, 1), period.Start)
	assert.Equal(t, date(2024, time.February, 29), period.End)
	assert.Equal(t, period.End, period.ElapsedEnd)
	assert.Equal(t, 29, period.ElapsedDays)
}

func TestResolvePeriod_FutureMonthHasZeroElapsedDays(t *testing.T) {
	t.Parallel()

	period, err := ResolvePeriod(statistics.PeriodMonth, date(2024, time.December, 5), date(2024, time.October, 10))
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.December, 1), period.Start)
	assert.Equal(t, 0, period.ElapsedDays)
}

func TestResolvePeriod_FirstDayOfCurrentMonth(t *testing.T) {
	t.Parallel()

	period, err := ResolvePeriod(statistics.PeriodMonth, date(2024, time.March, 1), date(2024, time.March, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, period.ElapsedDays)
	assert.Equal(t, date(2024, time.March, 1), period.ElapsedEnd)
}

func TestResolvePeriod_UnknownKindFails(t *testing.T) {
	t.Parallel()

	_, err := ResolvePeriod(statistics.PeriodKind("quarter"), date(2024, time.January, 15), date(2024, time.January, 15))
	assert.ErrorIs(t, err, statistics.ErrUnknownPeriodKind)
}

func TestResolvePeriod_TimeOfDayIsIgnored(t *testing.T) {
	t.Parallel()

	reference := time.Date(2024, time.January, 17, 23, 59, 0, 0, time.UTC)
	period, err := ResolvePeriod(statistics.PeriodWeek, reference, reference)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 15), period.Start)
}
