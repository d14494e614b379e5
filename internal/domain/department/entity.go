package department

import "time"

type Department struct {
	ID            string
	Name          string
	Manager       string
	Description   *string
	Location      string
	EmployeeCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
