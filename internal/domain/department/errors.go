package department

import "errors"

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
	ErrDepartmentNotEmpty   = errors.New("department still has employees assigned")
)
