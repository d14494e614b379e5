package leave

import (
	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employee_id"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"` // "YYYY-MM-DD"
	EndDate    string  `json:"end_date"`   // "YYYY-MM-DD"
	Reason     *string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee is required",
		})
	}
	if !validator.IsInSlice(r.Type, []string{string(TypeAnnual), string(TypeSick), string(TypeUnpaid), string(TypeOther)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: annual, sick, unpaid, other",
		})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must not be before start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	ID        string `json:"-"`
	DecidedBy string `json:"-"`
}

type LeaveFilter struct {
	EmployeeID string
	Status     string
	Type       string
	Page       int
	Limit      int
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
}

type ListLeaveResponse struct {
	Leaves     []LeaveResponse `json:"leaves"`
	TotalItems int64           `json:"total_items"`
}
