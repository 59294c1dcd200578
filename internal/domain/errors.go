package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// More specific errors below wrap or accompany it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyContent is returned when required text is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrContentTooLong is returned when text exceeds its allowed length.
	ErrContentTooLong = errors.New("content too long")

	// ErrNoImages is returned when an analysis is requested without pages.
	ErrNoImages = errors.New("at least one page image is required")

	// ErrTooManyImages is returned when more pages are supplied than allowed.
	ErrTooManyImages = errors.New("too many page images")

	// ErrUnsupportedImageType is returned for uploads that are not PNG or JPEG.
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// ErrImageTooLarge is returned when a page exceeds the size limit.
	ErrImageTooLarge = errors.New("image too large")

	// ErrUnknownLanguage is returned for a target language outside the list.
	ErrUnknownLanguage = errors.New("unknown target language")

	// ErrInvalidID is returned when an ID is malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidQuestionCount is returned when a quiz size is out of range.
	ErrInvalidQuestionCount = errors.New("invalid question count")
)

// ValidationError describes which field failed validation and why.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError wrapping err.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap exposes the wrapped error. ErrValidation is matched by Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
