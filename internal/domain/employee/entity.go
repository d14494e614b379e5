package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is keyed by the national ID number (12 digits).
type Employee struct {
	ID                 string
	Title              Title
	RegistrationNumber *string
	FirstName          string
	LastName           string
	Email              string
	Phone              *string
	Position           string
	DepartmentID       string
	Status             Status
	BaseSalary         *decimal.Decimal

	// Expected work schedule. Nil fields fall back to the company-wide
	// defaults when the punctuality policy is resolved.
	ExpectedClockIn  *time.Time
	ExpectedClockOut *time.Time
	ToleranceMinutes *int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	DepartmentName *string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Title string

const (
	TitleIntern    Title = "intern"
	TitlePermanent Title = "permanent"
)
