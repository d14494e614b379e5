package statistics

import "time"

// PeriodKind is the closed set of reporting period kinds.
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

func (k PeriodKind) Valid() bool {
	return k == PeriodWeek || k == PeriodMonth
}

// Period is a resolved reporting period. ElapsedEnd caps the analyzed
// range for months still in progress: expected hours and absences only
// count days that have actually occurred.
type Period struct {
	Kind        PeriodKind
	Start       time.Time
	End         time.Time
	ElapsedEnd  time.Time
	ElapsedDays int
}

type PunctualityCategory string

const (
	CategoryPerfect      PunctualityCategory = "perfect"
	CategoryAcceptable   PunctualityCategory = "acceptable"
	CategoryUnacceptable PunctualityCategory = "unacceptable"
)

// Classification is the punctuality verdict for a single punch.
type Classification struct {
	Category              PunctualityCategory
	LatenessMinutes       int
	EarlyDepartureMinutes int
	OnTimeIn              bool
	OnTimeOut             bool
}

type RegularityStatus string

const (
	RegularityPerfect      RegularityStatus = "perfect"
	RegularityAcceptable   RegularityStatus = "acceptable"
	RegularityUnacceptable RegularityStatus = "unacceptable"
)

type HoursStatus string

const (
	HoursInsufficient HoursStatus = "insufficient"
	HoursNormal       HoursStatus = "normal"
	HoursSurplus      HoursStatus = "surplus"
)

// EmployeeStatistics is a point-in-time snapshot of one employee's
// attendance over a period. Recomputing for the same (employee, period)
// key replaces the previous snapshot.
type EmployeeStatistics struct {
	EmployeeID string
	Period     Period

	TotalWorked  time.Duration
	DaysWorked   int
	DaysAbsent   int
	AverageDaily time.Duration

	PerfectCount      int
	AcceptableCount   int
	UnacceptableCount int

	AverageLatenessMinutes       float64
	AverageEarlyDepartureMinutes float64

	RegularityStatus RegularityStatus
	RegularityRate   float64

	PresenceRate float64
	AbsenceRate  float64

	ExpectedHours time.Duration
	HoursGap      time.Duration // signed: actual minus expected
	GapPercent    float64
	HoursStatus   HoursStatus

	Observation string

	ComputedAt time.Time
}

// DepartmentRollup summarizes one department inside a global snapshot.
type DepartmentRollup struct {
	DepartmentID    string
	Name            string
	EmployeeCount   int
	ActiveEmployees int
	PunchCount      int
	TotalWorked     time.Duration
	Active          bool
}

// GlobalStatistics is the organization-wide snapshot for a month. The
// punctuality counters are a raw tally over every classified punch in
// the organization, not a sum of per-employee rates.
type GlobalStatistics struct {
	Period Period

	TotalEmployees  int
	ActiveEmployees int
	ActivityRate    float64

	TotalDepartments  int
	ActiveDepartments int
	Departments       []DepartmentRollup

	TotalPunches         int
	ExpectedDaysPossible int
	TotalDaysWorked      int
	TotalAbsences        int

	PerfectCount      int
	AcceptableCount   int
	UnacceptableCount int
	PerfectRate       float64
	AcceptableRate    float64
	UnacceptableRate  float64

	TotalWorked  time.Duration
	AverageDaily time.Duration

	RegularityStatus RegularityStatus
	PresenceRate     float64
	AbsenceRate      float64

	ExpectedHours time.Duration
	HoursGap      time.Duration
	GapPercent    float64
	HoursStatus   HoursStatus

	Observation string

	ComputedAt time.Time
}
