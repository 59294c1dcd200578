package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is a free-text entry kept for one session while the process runs.
type Note struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"-"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNote creates a Note with a fresh ID. Surrounding whitespace is trimmed.
func NewNote(sessionID, text string) (*Note, error) {
	note := &Note{
		ID:        uuid.New(),
		SessionID: sessionID,
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now().UTC(),
	}

	if err := note.Validate(); err != nil {
		return nil, err
	}

	return note, nil
}

// Validate checks that the note has an ID, a session and text.
func (n *Note) Validate() error {
	if n.ID == uuid.Nil {
		return NewValidationError("id", "is required", ErrInvalidID)
	}
	if strings.TrimSpace(n.SessionID) == "" {
		return NewValidationError("session", "is required", ErrInvalidID)
	}
	if strings.TrimSpace(n.Text) == "" {
		return NewValidationError("text", "is required", ErrEmptyContent)
	}
	return nil
}
