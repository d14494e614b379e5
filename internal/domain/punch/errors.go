package punch

import "errors"

var (
	ErrPunchNotFound         = errors.New("punch record not found")
	ErrDuplicatePunch        = errors.New("a punch already exists for this employee on this date")
	ErrClockOutBeforeClockIn = errors.New("clock-out must be after clock-in")
)
