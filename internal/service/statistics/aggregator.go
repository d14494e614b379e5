package statistics

import (
	"math"
	"time"

	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

// expectedHoursPerDay is the nominal workday length used for the
// expected-hours baseline.
const expectedHoursPerDay = 8

// hoursGapTolerancePercent is the ±band around the expected hours inside
// which the hours status is "normal".
const hoursGapTolerancePercent = 15.0

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// regularityStatus derives the coarse status from the punctuality
// distribution. With no classified punches the status defaults to
// acceptable (neutral).
func regularityStatus(perfect, acceptable, unacceptable int) statistics.RegularityStatus {
	total := perfect + acceptable + unacceptable
	if total == 0 {
		return statistics.RegularityAcceptable
	}

	perfectPct := float64(perfect) / float64(total) * 100
	acceptablePct := float64(acceptable) / float64(total) * 100

	switch {
	case perfectPct >= 80:
		return statistics.RegularityPerfect
	case perfectPct >= 60 || perfectPct+acceptablePct >= 90:
		return statistics.RegularityAcceptable
	default:
		return statistics.RegularityUnacceptable
	}
}

// hoursStatus classifies actual vs expected hours. Zero actual hours are
// always insufficient, regardless of the gap percentage.
func hoursStatus(totalWorked time.Duration, gapPercent float64) statistics.HoursStatus {
	switch {
	case totalWorked == 0, gapPercent < -hoursGapTolerancePercent:
		return statistics.HoursInsufficient
	case gapPercent > hoursGapTolerancePercent:
		return statistics.HoursSurplus
	default:
		return statistics.HoursNormal
	}
}

// inElapsedRange reports whether the punch falls inside the period's
// elapsed sub-range.
func inElapsedRange(p punch.Punch, period statistics.Period) bool {
	if period.ElapsedDays == 0 {
		return false
	}
	date := dateOnly(p.Date)
	return !date.Before(period.Start) && !date.After(period.ElapsedEnd)
}

// ComputeEmployeePeriodStats folds an employee's punches over the resolved
// period into a statistics snapshot. Pure: the reference date and "today"
// are explicit, and identical inputs produce identical output.
//
// Only punches with a computed worked duration count toward worked days;
// a punch lacking a clock-out contributes neither duration nor
// classification.
func ComputeEmployeePeriodStats(
	emp employee.Employee,
	punches []punch.Punch,
	kind statistics.PeriodKind,
	reference, today time.Time,
	defaults SchedulePolicy,
) (statistics.EmployeeStatistics, error) {
	period, err := ResolvePeriod(kind, reference, today)
	if err != nil {
		return statistics.EmployeeStatistics{}, err
	}
	policy := ResolvePolicy(emp, defaults)

	var (
		totalWorked  time.Duration
		workedDays   = make(map[time.Time]struct{})
		perfect      int
		acceptable   int
		unacceptable int
		latenessSum  int
		earlySum     int
	)

	for _, p := range punches {
		if !inElapsedRange(p, period) {
			continue
		}
		duration, ok := p.WorkedDuration()
		if !ok {
			continue
		}
		totalWorked += duration
		workedDays[dateOnly(p.Date)] = struct{}{}

		classification, ok := ClassifyPunch(p, policy)
		if !ok {
			continue
		}
		switch classification.Category {
		case statistics.CategoryPerfect:
			perfect++
		case statistics.CategoryAcceptable:
			acceptable++
		default:
			unacceptable++
		}
		latenessSum += classification.LatenessMinutes
		earlySum += classification.EarlyDepartureMinutes
	}

	daysWorked := len(workedDays)
	daysAbsent := max(0, period.ElapsedDays-daysWorked)

	stats := statistics.EmployeeStatistics{
		EmployeeID:        emp.ID,
		Period:            period,
		TotalWorked:       totalWorked,
		DaysWorked:        daysWorked,
		DaysAbsent:        daysAbsent,
		PerfectCount:      perfect,
		AcceptableCount:   acceptable,
		UnacceptableCount: unacceptable,
	}

	if daysWorked > 0 {
		stats.AverageDaily = totalWorked / time.Duration(daysWorked)
		stats.AverageLatenessMinutes = round1(float64(latenessSum) / float64(daysWorked))
		stats.AverageEarlyDepartureMinutes = round1(float64(earlySum) / float64(daysWorked))
		// The regularity rate intentionally divides by worked days, not by
		// the classified punch total.
		stats.RegularityRate = round2(float64(perfect) / float64(daysWorked) * 100)
	}
	stats.RegularityStatus = regularityStatus(perfect, acceptable, unacceptable)

	if period.ElapsedDays > 0 {
		stats.PresenceRate = round2(float64(daysWorked) / float64(period.ElapsedDays) * 100)
		stats.AbsenceRate = round2(float64(daysAbsent) / float64(period.ElapsedDays) * 100)
	}

	stats.ExpectedHours = time.Duration(expectedHoursPerDay*period.ElapsedDays) * time.Hour
	stats.HoursGap = totalWorked - stats.ExpectedHours
	if stats.ExpectedHours > 0 {
		stats.GapPercent = round2(stats.HoursGap.Seconds() / stats.ExpectedHours.Seconds() * 100)
	}
	stats.HoursStatus = hoursStatus(totalWorked, stats.GapPercent)

	stats.Observation = buildEmployeeObservation(stats)

	return stats, nil
}
