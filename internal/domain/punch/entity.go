package punch

import "time"

// Punch is a single day's clock-in/clock-out record for an employee.
// One punch per employee per calendar day.
type Punch struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockIn       time.Time
	ClockOut      *time.Time
	Remark        *string
	WorkedMinutes *int

	// Punctuality metrics, computed when both clock times are present.
	OnTimeIn              bool
	OnTimeOut             bool
	PunctualityCategory   string
	LatenessMinutes       int
	EarlyDepartureMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// CategoryUnclassified marks punches that lack a clock-out and therefore
// carry no punctuality classification.
const CategoryUnclassified = "unclassified"

// WorkedDuration returns the worked duration, or false when the punch has
// no clock-out.
func (p Punch) WorkedDuration() (time.Duration, bool) {
	if p.WorkedMinutes == nil {
		return 0, false
	}
	return time.Duration(*p.WorkedMinutes) * time.Minute, true
}
