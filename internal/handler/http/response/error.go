package response

import (
	"errors"
	"net/http"

	"github.com/pulsehr/attendance-backend-go/internal/domain/auth"
	"github.com/pulsehr/attendance-backend-go/internal/domain/department"
	"github.com/pulsehr/attendance-backend-go/internal/domain/employee"
	"github.com/pulsehr/attendance-backend-go/internal/domain/event"
	"github.com/pulsehr/attendance-backend-go/internal/domain/leave"
	"github.com/pulsehr/attendance-backend-go/internal/domain/punch"
	"github.com/pulsehr/attendance-backend-go/internal/domain/statistics"
	"github.com/pulsehr/attendance-backend-go/internal/domain/user"
	"github.com/pulsehr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrRegistrationNumberUsed):
		Conflict(w, "Registration number already assigned")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has employees assigned")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, punch.ErrDuplicatePunch):
		Conflict(w, "A punch already exists for this employee on this date")
	case errors.Is(err, punch.ErrClockOutBeforeClockIn):
		BadRequest(w, "Clock-out must be after clock-in", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Event domain errors
	case errors.Is(err, event.ErrEventNotFound):
		NotFound(w, "Event not found")

	// Statistics domain errors
	case errors.Is(err, statistics.ErrUnknownPeriodKind):
		BadRequest(w, "Unknown period kind, expected 'week' or 'month'", nil)
	case errors.Is(err, statistics.ErrSnapshotNotFound):
		NotFound(w, "Statistics snapshot not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
