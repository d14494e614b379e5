package employee

import (
	"github.com/shopspring/decimal"

	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	RegistrationNumber *string          `json:"registration_number"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	Phone              *string          `json:"phone"`
	Position           string           `json:"position"`
	DepartmentID       string           `json:"department_id"`
	Status             string           `json:"status"`
	BaseSalary         *decimal.Decimal `json:"base_salary"`
	ExpectedClockIn    *string          `json:"expected_clock_in"`  // "HH:MM"
	ExpectedClockOut   *string          `json:"expected_clock_out"` // "HH:MM"
	ToleranceMinutes   *int             `json:"tolerance_minutes"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidNationalID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "national ID must be exactly 12 digits",
		})
	}
	if !validator.IsInSlice(r.Title, []string{string(TitleIntern), string(TitlePermanent)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must be 'intern' or 'permanent'",
		})
	}
	if r.Title == string(TitlePermanent) {
		if r.RegistrationNumber == nil || !validator.IsValidRegistrationNumber(*r.RegistrationNumber) {
			errs = append(errs, validator.ValidationError{
				Field:   "registration_number",
				Message: "permanent employees require a 6-digit registration number",
			})
		}
	} else if r.RegistrationNumber != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "registration_number",
			Message: "registration numbers are reserved for permanent employees",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department is required",
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'active' or 'inactive'",
		})
	}
	errs = append(errs, validateScheduleOverride(r.ExpectedClockIn, r.ExpectedClockOut, r.ToleranceMinutes)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                 string           `json:"-"`
	Title              string           `json:"title"`
	RegistrationNumber *string          `json:"registration_number"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	Phone              *string          `json:"phone"`
	Position           string           `json:"position"`
	DepartmentID       string           `json:"department_id"`
	Status             string           `json:"status"`
	BaseSalary         *decimal.Decimal `json:"base_salary"`
	ExpectedClockIn    *string          `json:"expected_clock_in"`
	ExpectedClockOut   *string          `json:"expected_clock_out"`
	ToleranceMinutes   *int             `json:"tolerance_minutes"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		ID:                 r.ID,
		Title:              r.Title,
		RegistrationNumber: r.RegistrationNumber,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		Phone:              r.Phone,
		Position:           r.Position,
		DepartmentID:       r.DepartmentID,
		Status:             r.Status,
		BaseSalary:         r.BaseSalary,
		ExpectedClockIn:    r.ExpectedClockIn,
		ExpectedClockOut:   r.ExpectedClockOut,
		ToleranceMinutes:   r.ToleranceMinutes,
	}
	return create.Validate()
}

func validateScheduleOverride(clockIn, clockOut *string, tolerance *int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	var inOK, outOK bool
	if clockIn != nil {
		if _, ok := validator.IsValidClockTime(*clockIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_clock_in",
				Message: "must be a valid HH:MM time",
			})
		} else {
			inOK = true
		}
	}
	if clockOut != nil {
		if _, ok := validator.IsValidClockTime(*clockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_clock_out",
				Message: "must be a valid HH:MM time",
			})
		} else {
			outOK = true
		}
	}
	if inOK && outOK && *clockOut <= *clockIn {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_clock_out",
			Message: "expected clock-out must be after expected clock-in",
		})
	}
	if tolerance != nil && *tolerance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tolerance_minutes",
			Message: "tolerance must not be negative",
		})
	}
	return errs
}

type EmployeeFilter struct {
	Search       string
	DepartmentID string
	Status       string
	Title        string
	Page         int
	Limit        int
}

type EmployeeResponse struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	RegistrationNumber *string          `json:"registration_number,omitempty"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	Phone              *string          `json:"phone,omitempty"`
	Position           string           `json:"position"`
	DepartmentID       string           `json:"department_id"`
	DepartmentName     *string          `json:"department_name,omitempty"`
	Status             string           `json:"status"`
	BaseSalary         *decimal.Decimal `json:"base_salary,omitempty"`
	ExpectedClockIn    *string          `json:"expected_clock_in,omitempty"`
	ExpectedClockOut   *string          `json:"expected_clock_out,omitempty"`
	ToleranceMinutes   *int             `json:"tolerance_minutes,omitempty"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}

type HeadcountResponse struct {
	TotalEmployees    int64 `json:"total_employees"`
	ActiveEmployees   int64 `json:"active_employees"`
	InactiveEmployees int64 `json:"inactive_employees"`
}
