package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/examzen/internal/api/shared"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/generation"
	"github.com/phrazzld/examzen/internal/retry"
	"github.com/phrazzld/examzen/internal/service"
	"github.com/phrazzld/examzen/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErrs),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrNoteLimitReached),
		errors.Is(err, service.ErrNoNotes),
		errors.Is(err, generation.ErrEmptyPrompt):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// The model refused the content
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Rate limited upstream even after every retry
	case retry.IsRetryable(err):
		return http.StatusTooManyRequests

	// The model answered with nothing usable
	case errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	// Misconfiguration is our problem, not the upstream's
	case errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusInternalServerError

	// Other failures of the remote call
	case errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly message for err that never
// includes internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var valErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &valErr):
		return fmt.Sprintf("Invalid %s: %s", valErr.Field, valErr.Message)
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, service.ErrNoteLimitReached):
		return "Note limit reached for this session"
	case errors.Is(err, service.ErrNoNotes):
		return "There are no notes to summarize"
	case errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, store.ErrNoteNotFound):
		return "Note not found"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by the model's safety filters"
	case retry.IsRetryable(err):
		return "The AI service is busy. Please try again in a minute"
	case errors.Is(err, generation.ErrInvalidResponse):
		return "The AI service returned an empty response"
	case errors.Is(err, generation.ErrGenerationFailed):
		return "The AI service request failed"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator output into a short message that
// names only the field and the failed rule.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err. A non-empty defaultMsg replaces
// the generic message for 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnprocessableEntity {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
