package leave

import "time"

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     Status
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

type Type string

const (
	TypeAnnual Type = "annual"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
	TypeOther  Type = "other"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Days returns the inclusive calendar day count of the leave.
func (l LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
