package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/domain"
)

// NoteStore defines the interface for session note storage.
// Notes never outlive the process.
type NoteStore interface {
	// Create saves a new note in its session.
	// Returns validation errors from the domain Note if data is invalid.
	Create(ctx context.Context, note *domain.Note) error

	// CreateWithinLimit saves a new note unless its session already holds
	// limit notes, in which case it returns ErrLimitReached. The check and
	// the insert are atomic.
	CreateWithinLimit(ctx context.Context, note *domain.Note, limit int) error

	// ListBySession returns the session's notes in creation order.
	// Returns an empty slice if the session has no notes.
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Note, error)

	// Delete removes one note from a session.
	// Returns ErrNoteNotFound if the session has no note with that ID.
	Delete(ctx context.Context, sessionID string, id uuid.UUID) error

	// DeleteSession removes every note in a session and reports how many
	// were removed.
	DeleteSession(ctx context.Context, sessionID string) (int, error)

	// CountBySession returns the number of notes in a session.
	CountBySession(ctx context.Context, sessionID string) (int, error)
}
