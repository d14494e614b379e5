package punch

import (
	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

type CreatePunchRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`      // "YYYY-MM-DD"
	ClockIn    string  `json:"clock_in"`  // "HH:MM"
	ClockOut   *string `json:"clock_out"` // "HH:MM", optional
	Remark     *string `json:"remark"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	clockIn, inOK := validator.IsValidClockTime(r.ClockIn)
	if !inOK {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock-in must be a valid HH:MM time",
		})
	}
	if r.ClockOut != nil {
		clockOut, outOK := validator.IsValidClockTime(*r.ClockOut)
		if !outOK {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock-out must be a valid HH:MM time",
			})
		} else if inOK && !clockOut.After(clockIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock-out must be after clock-in",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePunchRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
	Remark     *string `json:"remark"`
}

func (r *UpdatePunchRequest) Validate() error {
	create := CreatePunchRequest{
		EmployeeID: r.EmployeeID,
		Date:       r.Date,
		ClockIn:    r.ClockIn,
		ClockOut:   r.ClockOut,
		Remark:     r.Remark,
	}
	return create.Validate()
}

type PunchFilter struct {
	EmployeeID string
	Date       string
	Search     string
	Page       int
	Limit      int
}

type PunchResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          *string `json:"employee_name,omitempty"`
	Date                  string  `json:"date"`
	ClockIn               string  `json:"clock_in"`
	ClockOut              *string `json:"clock_out,omitempty"`
	Remark                *string `json:"remark,omitempty"`
	WorkedMinutes         *int    `json:"worked_minutes,omitempty"`
	OnTimeIn              bool    `json:"on_time_in"`
	OnTimeOut             bool    `json:"on_time_out"`
	PunctualityCategory   string  `json:"punctuality_category"`
	LatenessMinutes       int     `json:"lateness_minutes"`
	EarlyDepartureMinutes int     `json:"early_departure_minutes"`
}

// PunctualityResponse is the classification slice of a punch, served on
// its own for day-detail views.
type PunctualityResponse struct {
	PunchID               string `json:"punch_id"`
	Date                  string `json:"date"`
	OnTimeIn              bool   `json:"on_time_in"`
	OnTimeOut             bool   `json:"on_time_out"`
	PunctualityCategory   string `json:"punctuality_category"`
	LatenessMinutes       int    `json:"lateness_minutes"`
	EarlyDepartureMinutes int    `json:"early_departure_minutes"`
}

type ListPunchResponse struct {
	Punches    []PunchResponse `json:"punches"`
	TotalItems int64           `json:"total_items"`
}
