package response

import (
	"errors"
	"net/http"

	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/auth"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
)

// HandleError maps domain errors to HTTP responses. External-call
// failures collapse into a generic 500; detail stays in the log.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrHRAccessRequired),
		errors.Is(err, auth.ErrGateAccessRequired),
		errors.Is(err, auth.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrDirectoryUnavailable):
		ServiceUnavailable(w, "Staff directory is not available")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrStoreUnavailable):
		ServiceUnavailable(w, "Attendance store is not available")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
