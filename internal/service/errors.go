package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/examzen/internal/store"
)

// Common service errors - sentinel errors callers check with errors.Is().
// The API layer maps them to HTTP status codes.
var (
	// ErrNoteNotFound indicates the note does not exist in the caller's session.
	// API layer should map this to HTTP 404 Not Found.
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteLimitReached indicates the session already holds the maximum number
	// of notes. API layer should map this to HTTP 400 Bad Request.
	ErrNoteLimitReached = errors.New("note limit reached for this session")

	// ErrNoNotes indicates a summary was requested for a session without notes.
	ErrNoNotes = errors.New("no notes to summarize")
)

// ServiceError wraps errors from a service operation with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "analyze_chapter", "add_note")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err for operation. Store-level not-found errors are
// translated to ErrNoteNotFound and returned without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNoteNotFound) || errors.Is(err, store.ErrNoteNotFound) {
		return ErrNoteNotFound
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
