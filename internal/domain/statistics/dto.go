package statistics

import (
	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

type EmployeeStatisticsRequest struct {
	EmployeeID    string
	PeriodKind    string
	ReferenceDate string // "YYYY-MM-DD", defaults to today
}

func (r *EmployeeStatisticsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee is required",
		})
	}
	if !PeriodKind(r.PeriodKind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be 'week' or 'month'",
		})
	}
	if r.ReferenceDate != "" {
		if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GlobalStatisticsRequest struct {
	ReferenceDate string // "YYYY-MM-DD", defaults to today
}

func (r *GlobalStatisticsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReferenceDate != "" {
		if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	Kind        string `json:"kind"`
	Start       string `json:"start"`
	End         string `json:"end"`
	ElapsedEnd  string `json:"elapsed_end"`
	ElapsedDays int    `json:"elapsed_days"`
}

type EmployeeStatisticsResponse struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeName string         `json:"employee_name,omitempty"`
	Period       PeriodResponse `json:"period"`

	TotalWorkedMinutes  int    `json:"total_worked_minutes"`
	TotalWorked         string `json:"total_worked"`
	DaysWorked          int    `json:"days_worked"`
	DaysAbsent          int    `json:"days_absent"`
	AverageDailyMinutes int    `json:"average_daily_minutes"`

	PerfectCount      int `json:"punctuality_perfect"`
	AcceptableCount   int `json:"punctuality_acceptable"`
	UnacceptableCount int `json:"punctuality_unacceptable"`

	AverageLatenessMinutes       float64 `json:"average_lateness_minutes"`
	AverageEarlyDepartureMinutes float64 `json:"average_early_departure_minutes"`

	RegularityStatus string  `json:"regularity_status"`
	RegularityRate   float64 `json:"regularity_rate"`

	PresenceRate float64 `json:"presence_rate"`
	AbsenceRate  float64 `json:"absence_rate"`

	ExpectedHoursMinutes int     `json:"expected_minutes"`
	ExpectedHours        string  `json:"expected_hours"`
	HoursGapMinutes      int     `json:"hours_gap_minutes"`
	GapPercent           float64 `json:"gap_percent"`
	HoursStatus          string  `json:"hours_status"`

	Observation string `json:"observation"`
}

type DepartmentRollupResponse struct {
	DepartmentID       string `json:"department_id"`
	Name               string `json:"name"`
	EmployeeCount      int    `json:"employee_count"`
	ActiveEmployees    int    `json:"active_employees"`
	PunchCount         int    `json:"punch_count"`
	TotalWorkedMinutes int    `json:"total_worked_minutes"`
	Active             bool   `json:"active"`
}

type GlobalStatisticsResponse struct {
	Period PeriodResponse `json:"period"`

	TotalEmployees  int     `json:"total_employees"`
	ActiveEmployees int     `json:"active_employees"`
	ActivityRate    float64 `json:"activity_rate"`

	TotalDepartments  int                        `json:"total_departments"`
	ActiveDepartments int                        `json:"active_departments"`
	Departments       []DepartmentRollupResponse `json:"departments"`

	TotalPunches         int `json:"total_punches"`
	ExpectedDaysPossible int `json:"expected_days_possible"`
	TotalDaysWorked      int `json:"total_days_worked"`
	TotalAbsences        int `json:"total_absences"`

	PerfectCount      int     `json:"punctuality_perfect"`
	AcceptableCount   int     `json:"punctuality_acceptable"`
	UnacceptableCount int     `json:"punctuality_unacceptable"`
	PerfectRate       float64 `json:"perfect_rate"`
	AcceptableRate    float64 `json:"acceptable_rate"`
	UnacceptableRate  float64 `json:"unacceptable_rate"`

	TotalWorkedMinutes  int    `json:"total_worked_minutes"`
	TotalWorked         string `json:"total_worked"`
	AverageDailyMinutes int    `json:"average_daily_minutes"`

	RegularityStatus string  `json:"regularity_status"`
	PresenceRate     float64 `json:"presence_rate"`
	AbsenceRate      float64 `json:"absence_rate"`

	ExpectedHoursMinutes int     `json:"expected_minutes"`
	HoursGapMinutes      int     `json:"hours_gap_minutes"`
	GapPercent           float64 `json:"gap_percent"`
	HoursStatus          string  `json:"hours_status"`

	Observation string `json:"observation"`
}
