package statistics

import (
	"time"

	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func inclusiveDays(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours()/24) + 1
}

// ResolvePeriod computes the calendar bounds of the reporting period
// containing the reference date, and the elapsed sub-range relative to
// today.
//
// Weeks start on Monday and are always treated as fully elapsed. Months
// are capped at today while in progress: a mid-month report must not
// count days that have not occurred yet, otherwise it would show a large
// artificial hours deficit. A month entirely in the future has zero
// elapsed days.
func ResolvePeriod(kind statistics.PeriodKind, reference, today time.Time) (statistics.Period, error) {
	reference = dateOnly(reference)
	today = dateOnly(today)

	switch kind {
	case statistics.PeriodWeek:
		// Monday-start week index: Monday=0 .. Sunday=6
		weekday := (int(reference.Weekday()) + 6) % 7
		start := reference.AddDate(0, 0, -weekday)
		end := start.AddDate(0, 0, 6)
		return statistics.Period{
			Kind:        statistics.PeriodWeek,
			Start:       start,
			End:         end,
			ElapsedEnd:  end,
			ElapsedDays: 7,
		}, nil

	case statistics.PeriodMonth:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)

		period := statistics.Period{
			Kind:  statistics.PeriodMonth,
			Start: start,
			End:   end,
		}
		switch {
		case start.After(today):
			period.ElapsedEnd = start
			period.ElapsedDays = 0
		case start.Year() == today.Year() && start.Month() == today.Month():
			period.ElapsedEnd = today
			period.ElapsedDays = inclusiveDays(start, today)
		default:
			period.ElapsedEnd = end
			period.ElapsedDays = inclusiveDays(start, end)
		}
		return period, nil

	default:
		return statistics.Period{}, statistics.ErrUnknownPeriodKind
	}
}
