package statistics

import (
	"fmt"
	"strings"

	"time"

	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
)

// FormatDuration renders a duration as "3h 05min". Negative durations are
// rendered by their absolute value; callers decide how to label the sign.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	totalSeconds := int(d.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%dh %02dmin", hours, minutes)
}

// buildEmployeeObservation renders the numeric snapshot into a
// human-readable summary. The template is selected by the hours status;
// there is no other branching.
func buildEmployeeObservation(s statistics.EmployeeStatistics) string {
	var b strings.Builder

	if s.DaysAbsent > 0 {
		fmt.Fprintf(&b, "%d day(s) of absence out of %d elapsed day(s). ", s.DaysAbsent, s.Period.ElapsedDays)
	}

	switch s.HoursStatus {
	case statistics.HoursInsufficient:
		fmt.Fprintf(&b, "Insufficient hours: the employee worked %d day(s) over %d elapsed day(s) (%s of %s expected). Deficit: %s. ",
			s.DaysWorked, s.Period.ElapsedDays, FormatDuration(s.TotalWorked), FormatDuration(s.ExpectedHours), FormatDuration(s.HoursGap))
	case statistics.HoursSurplus:
		fmt.Fprintf(&b, "Hours in surplus: the employee worked %d day(s) over %d elapsed day(s) (%s of %s expected). Excess: %s. ",
			s.DaysWorked, s.Period.ElapsedDays, FormatDuration(s.TotalWorked), FormatDuration(s.ExpectedHours), FormatDuration(s.HoursGap))
	default:
		fmt.Fprintf(&b, "Hours on target: the employee worked %d day(s) over %d elapsed day(s) (%s). ",
			s.DaysWorked, s.Period.ElapsedDays, FormatDuration(s.TotalWorked))
	}

	fmt.Fprintf(&b, "Punctuality: %d perfect, %d acceptable, %d unacceptable. Average lateness: %.1f min, average early departure: %.1f min. ",
		s.PerfectCount, s.AcceptableCount, s.UnacceptableCount, s.AverageLatenessMinutes, s.AverageEarlyDepartureMinutes)
	fmt.Fprintf(&b, "Regularity: %s. Presence: %.1f%%, absence: %.1f%%.",
		strings.ToUpper(string(s.RegularityStatus)), s.PresenceRate, s.AbsenceRate)

	return b.String()
}

// buildGlobalObservation renders the organization-wide snapshot.
func buildGlobalObservation(s statistics.GlobalStatistics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Global statistics for %s\n", s.Period.Start.Format("January 2006"))
	fmt.Fprintf(&b, "- Days analyzed: %d\n", s.Period.ElapsedDays)
	fmt.Fprintf(&b, "- Employees: %d/%d active (%.1f%%)\n", s.ActiveEmployees, s.TotalEmployees, s.ActivityRate)
	fmt.Fprintf(&b, "- Departments: %d/%d active\n", s.ActiveDepartments, s.TotalDepartments)
	fmt.Fprintf(&b, "- Punches recorded: %d of %d expected (%.1f%%)\n", s.TotalPunches, s.ExpectedDaysPossible, s.PresenceRate)
	fmt.Fprintf(&b, "- Hours worked: %s\n", FormatDuration(s.TotalWorked))
	fmt.Fprintf(&b, "- Punctuality: %d perfect, %d acceptable, %d unacceptable\n", s.PerfectCount, s.AcceptableCount, s.UnacceptableCount)
	fmt.Fprintf(&b, "- Hours status: %s (gap: %s, %.1f%%)", s.HoursStatus, FormatDuration(s.HoursGap), s.GapPercent)

	return b.String()
}
