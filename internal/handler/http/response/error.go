package response

import (
	"errors"
	"net/http"

	"github.com/workpulse/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse/attendance-backend-go/internal/domain/location"
	"github.com/workpulse/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "An open session already exists")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "No open session to clock out of")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Session not found")
	case errors.Is(err, attendance.ErrInvalidSessionKind):
		BadRequest(w, "Invalid session kind", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Location not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
