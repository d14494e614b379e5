package statistics

import (
	"time"

	"github.com/pulsehr/attendance-backend-go/internal/domain/department"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

// ComputeGlobalPeriodStats computes the organization-wide monthly
// snapshot. Punctuality counters are a raw tally of every classified
// punch in the period, after which the same status formulas as the
// per-employee aggregation are applied to the composite totals.
//
// "Expected days possible" is active employees × elapsed days, and the
// absence total compares it against punches actually recorded.
func ComputeGlobalPeriodStats(
	employees []employee.Employee,
	punchesByEmployee map[string][]punch.Punch,
	departments []department.Department,
	reference, today time.Time,
	defaults SchedulePolicy,
) (statistics.GlobalStatistics, error) {
	period, err := ResolvePeriod(statistics.PeriodMonth, reference, today)
	if err != nil {
		return statistics.GlobalStatistics{}, err
	}

	stats := statistics.GlobalStatistics{
		Period:           period,
		TotalEmployees:   len(employees),
		TotalDepartments: len(departments),
	}

	type departmentTally struct {
		members     int
		active      int
		punches     int
		totalWorked time.Duration
	}
	byDepartment := make(map[string]*departmentTally, len(departments))
	for _, d := range departments {
		byDepartment[d.ID] = &departmentTally{}
	}

	var (
		totalWorked     time.Duration
		totalPunches    int
		totalDaysWorked int
		perfect         int
		acceptable      int
		unacceptable    int
	)

	for _, emp := range employees {
		tally := byDepartment[emp.DepartmentID]
		if tally != nil {
			tally.members++
		}
		if emp.Status == employee.StatusActive {
			stats.ActiveEmployees++
			if tally != nil {
				tally.active++
			}
		}

		policy := ResolvePolicy(emp, defaults)
		workedDays := make(map[time.Time]struct{})

		for _, p := range punchesByEmployee[emp.ID] {
			if !inElapsedRange(p, period) {
				continue
			}
			duration, ok := p.WorkedDuration()
			if !ok {
				continue
			}
			totalPunches++
			totalWorked += duration
			workedDays[dateOnly(p.Date)] = struct{}{}
			if tally != nil {
				tally.punches++
				tally.totalWorked += duration
			}

			if classification, ok := ClassifyPunch(p, policy); ok {
				switch classification.Category {
				case statistics.CategoryPerfect:
					perfect++
				case statistics.CategoryAcceptable:
					acceptable++
				default:
					unacceptable++
				}
			}
		}
		totalDaysWorked += len(workedDays)
	}

	stats.Departments = make([]statistics.DepartmentRollup, 0, len(departments))
	for _, d := range departments {
		tally := byDepartment[d.ID]
		rollup := statistics.DepartmentRollup{
			DepartmentID:    d.ID,
			Name:            d.Name,
			EmployeeCount:   tally.members,
			ActiveEmployees: tally.active,
			PunchCount:      tally.punches,
			TotalWorked:     tally.totalWorked,
			Active:          tally.active > 0,
		}
		if rollup.Active {
			stats.ActiveDepartments++
		}
		stats.Departments = append(stats.Departments, rollup)
	}

	if stats.TotalEmployees > 0 {
		stats.ActivityRate = round2(float64(stats.ActiveEmployees) / float64(stats.TotalEmployees) * 100)
	}

	stats.TotalPunches = totalPunches
	stats.TotalDaysWorked = totalDaysWorked
	stats.TotalWorked = totalWorked
	stats.PerfectCount = perfect
	stats.AcceptableCount = acceptable
	stats.UnacceptableCount = unacceptable

	stats.ExpectedDaysPossible = stats.ActiveEmployees * period.ElapsedDays
	stats.TotalAbsences = max(0, stats.ExpectedDaysPossible-totalPunches)

	if stats.ExpectedDaysPossible > 0 {
		stats.PresenceRate = round2(float64(totalPunches) / float64(stats.ExpectedDaysPossible) * 100)
		stats.AbsenceRate = round2(float64(stats.TotalAbsences) / float64(stats.ExpectedDaysPossible) * 100)
	}

	if totalClassified := perfect + acceptable + unacceptable; totalClassified > 0 {
		stats.PerfectRate = round2(float64(perfect) / float64(totalClassified) * 100)
		stats.AcceptableRate = round2(float64(acceptable) / float64(totalClassified) * 100)
		stats.UnacceptableRate = round2(float64(unacceptable) / float64(totalClassified) * 100)
	}
	stats.RegularityStatus = regularityStatus(perfect, acceptable, unacceptable)

	if totalPunches > 0 {
		stats.AverageDaily = totalWorked / time.Duration(totalPunches)
	}

	stats.ExpectedHours = time.Duration(expectedHoursPerDay*stats.ExpectedDaysPossible) * time.Hour
	stats.HoursGap = totalWorked - stats.ExpectedHours
	if stats.ExpectedHours > 0 {
		stats.GapPercent = round2(stats.HoursGap.Seconds() / stats.ExpectedHours.Seconds() * 100)
	}
	stats.HoursStatus = hoursStatus(totalWorked, stats.GapPercent)

	stats.Observation = buildGlobalObservation(stats)

	return stats, nil
}
