package response

import (
	"errors"
	"net/http"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/auth"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/leave"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/user"
	"github.com/HamdullahAltun/personel-takip-sub003/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Leave request cannot make this transition")
	case errors.Is(err, leave.ErrTransitionConflict):
		Conflict(w, "Leave request was decided concurrently, retry")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
