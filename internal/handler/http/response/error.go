package response

import (
	"errors"
	"net/http"

	"github.com/epitome-prod/callsheet-backend-go/internal/domain/auth"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/crew"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/project"
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/user"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectAccessDenied):
		Forbidden(w, "Project does not belong to this user")
	case errors.Is(err, project.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, project.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Call sheet domain errors
	case errors.Is(err, callsheet.ErrCallSheetNotFound):
		NotFound(w, "Call sheet not found")
	case errors.Is(err, callsheet.ErrRSVPNotFound), errors.Is(err, callsheet.ErrRSVPTokenInvalid):
		NotFound(w, "RSVP not found")
	case errors.Is(err, callsheet.ErrCrewMemberNoEmail):
		BadRequest(w, "Crew member has no email address", nil)
	case errors.Is(err, callsheet.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Crew domain errors
	case errors.Is(err, crew.ErrCrewMemberNotFound):
		NotFound(w, "Crew member not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
