package department

import (
	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Manager     string  `json:"manager"`
	Description *string `json:"description"`
	Location    string  `json:"location"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Manager) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager",
			Message: "manager is required",
		})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        string  `json:"name"`
	Manager     string  `json:"manager"`
	Description *string `json:"description"`
	Location    string  `json:"location"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	create := CreateDepartmentRequest{
		Name:        r.Name,
		Manager:     r.Manager,
		Description: r.Description,
		Location:    r.Location,
	}
	return create.Validate()
}

type DepartmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Manager       string  `json:"manager"`
	Description   *string `json:"description,omitempty"`
	Location      string  `json:"location"`
	EmployeeCount int     `json:"employee_count"`
}
