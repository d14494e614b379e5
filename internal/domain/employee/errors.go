package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrNationalIDExists       = errors.New("national ID already registered")
	ErrEmailExists            = errors.New("email already registered")
	ErrRegistrationNumberUsed = errors.New("registration number already assigned")
)
