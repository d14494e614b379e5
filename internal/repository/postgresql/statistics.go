package postgresql

import (
	"context"
	"time"

	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/database"
)

type snapshotRepositoryImpl struct {
	db *database.DB
}

func NewSnapshotRepository(db *database.DB) statistics.SnapshotRepository {
	return &snapshotRepositoryImpl{db: db}
}

// UpsertEmployeeSnapshot implements statistics.SnapshotRepository.
func (r *snapshotRepositoryImpl) UpsertEmployeeSnapshot(ctx context.Context, stats statistics.EmployeeStatistics) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_statistics (
			employee_id, period_kind, period_start, period_end, elapsed_end, elapsed_days,
			total_worked_minutes, days_worked, days_absent, average_daily_minutes,
			perfect_count, acceptable_count, unacceptable_count,
			average_lateness_minutes, average_early_departure_minutes,
			regularity_status, regularity_rate, presence_rate, absence_rate,
			expected_hours_minutes, hours_gap_minutes, gap_percent, hours_status,
			observation, computed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13,
			$14, $15,
			$16, $17, $18, $19,
			$20, $21, $22, $23,
			$24, $25
		)
		ON CONFLICT (employee_id, period_kind, period_start, period_end) DO UPDATE SET
			elapsed_end = EXCLUDED.elapsed_end,
			elapsed_days = EXCLUDED.elapsed_days,
			total_worked_minutes = EXCLUDED.total_worked_minutes,
			days_worked = EXCLUDED.days_worked,
			days_absent = EXCLUDED.days_absent,
			average_daily_minutes = EXCLUDED.average_daily_minutes,
			perfect_count = EXCLUDED.perfect_count,
			acceptable_count = EXCLUDED.acceptable_count,
			unacceptable_count = EXCLUDED.unacceptable_count,
			average_lateness_minutes = EXCLUDED.average_lateness_minutes,
			average_early_departure_minutes = EXCLUDED.average_early_departure_minutes,
			regularity_status = EXCLUDED.regularity_status,
			regularity_rate = EXCLUDED.regularity_rate,
			presence_rate = EXCLUDED.presence_rate,
			absence_rate = EXCLUDED.absence_rate,
			expected_hours_minutes = EXCLUDED.expected_hours_minutes,
			hours_gap_minutes = EXCLUDED.hours_gap_minutes,
			gap_percent = EXCLUDED.gap_percent,
			hours_status = EXCLUDED.hours_status,
			observation = EXCLUDED.observation,
			computed_at = EXCLUDED.computed_at
	`

	_, err := q.Exec(ctx, query,
		stats.EmployeeID, stats.Period.Kind, stats.Period.Start, stats.Period.End,
		stats.Period.ElapsedEnd, stats.Period.ElapsedDays,
		int(stats.TotalWorked.Minutes()), stats.DaysWorked, stats.DaysAbsent,
		int(stats.AverageDaily.Minutes()),
		stats.PerfectCount, stats.AcceptableCount, stats.UnacceptableCount,
		stats.AverageLatenessMinutes, stats.AverageEarlyDepartureMinutes,
		stats.RegularityStatus, stats.RegularityRate, stats.PresenceRate, stats.AbsenceRate,
		int(stats.ExpectedHours.Minutes()), int(stats.HoursGap.Minutes()),
		stats.GapPercent, stats.HoursStatus,
		stats.Observation, stats.ComputedAt,
	)
	return err
}

// ListEmployeeSnapshots implements statistics.SnapshotRepository.
func (r *snapshotRepositoryImpl) ListEmployeeSnapshots(ctx context.Context, employeeID string, kind statistics.PeriodKind, limit int) ([]statistics.EmployeeStatistics, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, period_kind, period_start, period_end, elapsed_end, elapsed_days,
			total_worked_minutes, days_worked, days_absent, average_daily_minutes,
			perfect_count, acceptable_count, unacceptable_count,
			average_lateness_minutes, average_early_departure_minutes,
			regularity_status, regularity_rate, presence_rate, absence_rate,
			expected_hours_minutes, hours_gap_minutes, gap_percent, hours_status,
			observation, computed_at
		FROM employee_statistics
		WHERE employee_id = $1 AND period_kind = $2
		ORDER BY period_start DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, employeeID, kind, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []statistics.EmployeeStatistics
	for rows.Next() {
		var (
			s                   statistics.EmployeeStatistics
			totalWorkedMinutes  int
			averageDailyMinutes int
			expectedMinutes     int
			gapMinutes          int
		)
		err := rows.Scan(
			&s.EmployeeID, &s.Period.Kind, &s.Period.Start, &s.Period.End,
			&s.Period.ElapsedEnd, &s.Period.ElapsedDays,
			&totalWorkedMinutes, &s.DaysWorked, &s.DaysAbsent, &averageDailyMinutes,
			&s.PerfectCount, &s.AcceptableCount, &s.UnacceptableCount,
			&s.AverageLatenessMinutes, &s.AverageEarlyDepartureMinutes,
			&s.RegularityStatus, &s.RegularityRate, &s.PresenceRate, &s.AbsenceRate,
			&expectedMinutes, &gapMinutes, &s.GapPercent, &s.HoursStatus,
			&s.Observation, &s.ComputedAt,
		)
		if err != nil {
			return nil, err
		}
		s.TotalWorked = time.Duration(totalWorkedMinutes) * time.Minute
		s.AverageDaily = time.Duration(averageDailyMinutes) * time.Minute
		s.ExpectedHours = time.Duration(expectedMinutes) * time.Minute
		s.HoursGap = time.Duration(gapMinutes) * time.Minute
		snapshots = append(snapshots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// UpsertGlobalSnapshot implements statistics.SnapshotRepository.
func (r *snapshotRepositoryImpl) UpsertGlobalSnapshot(ctx context.Context, stats statistics.GlobalStatistics) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO global_statistics (
			period_start, period_end, elapsed_end, elapsed_days,
			total_employees, active_employees, activity_rate,
			total_departments, active_departments,
			total_punches, expected_days_possible, total_days_worked, total_absences,
			perfect_count, acceptable_count, unacceptable_count,
			perfect_rate, acceptable_rate, unacceptable_rate,
			total_worked_minutes, average_daily_minutes,
			regularity_status, presence_rate, absence_rate,
			expected_hours_minutes, hours_gap_minutes, gap_percent, hours_status,
			observation, computed_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9,
			$10, $11, $12, $13,
			$14, $15, $16,
			$17, $18, $19,
			$20, $21,
			$22, $23, $24,
			$25, $26, $27, $28,
			$29, $30
		)
		ON CONFLICT (period_start) DO UPDATE SET
			period_end = EXCLUDED.period_end,
			elapsed_end = EXCLUDED.elapsed_end,
			elapsed_days = EXCLUDED.elapsed_days,
			total_employees = EXCLUDED.total_employees,
			active_employees = EXCLUDED.active_employees,
			activity_rate = EXCLUDED.activity_rate,
			total_departments = EXCLUDED.total_departments,
			active_departments = EXCLUDED.active_departments,
			total_punches = EXCLUDED.total_punches,
			expected_days_possible = EXCLUDED.expected_days_possible,
			total_days_worked = EXCLUDED.total_days_worked,
			total_absences = EXCLUDED.total_absences,
			perfect_count = EXCLUDED.perfect_count,
			acceptable_count = EXCLUDED.acceptable_count,
			unacceptable_count = EXCLUDED.unacceptable_count,
			perfect_rate = EXCLUDED.perfect_rate,
			acceptable_rate = EXCLUDED.acceptable_rate,
			unacceptable_rate = EXCLUDED.unacceptable_rate,
			total_worked_minutes = EXCLUDED.total_worked_minutes,
			average_daily_minutes = EXCLUDED.average_daily_minutes,
			regularity_status = EXCLUDED.regularity_status,
			presence_rate = EXCLUDED.presence_rate,
			absence_rate = EXCLUDED.absence_rate,
			expected_hours_minutes = EXCLUDED.expected_hours_minutes,
			hours_gap_minutes = EXCLUDED.hours_gap_minutes,
			gap_percent = EXCLUDED.gap_percent,
			hours_status = EXCLUDED.hours_status,
			observation = EXCLUDED.observation,
			computed_at = EXCLUDED.computed_at
	`

	_, err := q.Exec(ctx, query,
		stats.Period.Start, stats.Period.End, stats.Period.ElapsedEnd, stats.Period.ElapsedDays,
		stats.TotalEmployees, stats.ActiveEmployees, stats.ActivityRate,
		stats.TotalDepartments, stats.ActiveDepartments,
		stats.TotalPunches, stats.ExpectedDaysPossible, stats.TotalDaysWorked, stats.TotalAbsences,
		stats.PerfectCount, stats.AcceptableCount, stats.UnacceptableCount,
		stats.PerfectRate, stats.AcceptableRate, stats.UnacceptableRate,
		int(stats.TotalWorked.Minutes()), int(stats.AverageDaily.Minutes()),
		stats.RegularityStatus, stats.PresenceRate, stats.AbsenceRate,
		int(stats.ExpectedHours.Minutes()), int(stats.HoursGap.Minutes()),
		stats.GapPercent, stats.HoursStatus,
		stats.Observation, stats.ComputedAt,
	)
	return err
}
