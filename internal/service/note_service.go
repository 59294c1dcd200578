package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/store"
)

// NoteRepository is the storage the note service needs. It is aligned with
// store.NoteStore.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	CreateWithinLimit(ctx context.Context, note *domain.Note, limit int) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Note, error)
	Delete(ctx context.Context, sessionID string, id uuid.UUID) error
	DeleteSession(ctx context.Context, sessionID string) (int, error)
}

var _ NoteRepository = (store.NoteStore)(nil)

// NoteService manages free-text notes scoped to one session.
type NoteService interface {
	// Add stores a note in the session and returns it.
	Add(ctx context.Context, sessionID, text string) (*domain.Note, error)

	// List returns the session's notes in creation order.
	List(ctx context.Context, sessionID string) ([]*domain.Note, error)

	// Delete removes one note. Returns ErrNoteNotFound when absent.
	Delete(ctx context.Context, sessionID string, id uuid.UUID) error

	// Clear removes all of the session's notes and reports how many were removed.
	Clear(ctx context.Context, sessionID string) (int, error)
}

// NoteLimits bounds what one session may store.
type NoteLimits struct {
	MaxPerSession int
	MaxLength     int
}

type noteServiceImpl struct {
	repo   NoteRepository
	limits NoteLimits
	logger *slog.Logger
}

// NewNoteService creates a NoteService. Zero limits disable the matching check.
func NewNoteService(repo NoteRepository, limits NoteLimits, logger *slog.Logger) (NoteService, error) {
	if repo == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "note repository cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &noteServiceImpl{
		repo:   repo,
		limits: limits,
		logger: logger.With("component", "note_service"),
	}, nil
}

func (s *noteServiceImpl) Add(ctx context.Context, sessionID, text string) (*domain.Note, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if s.limits.MaxLength > 0 && utf8.RuneCountInString(strings.TrimSpace(text)) > s.limits.MaxLength {
		return nil, domain.NewValidationError("text",
			fmt.Sprintf("must be at most %d characters", s.limits.MaxLength), domain.ErrContentTooLong)
	}

	note, err := domain.NewNote(sessionID, text)
	if err != nil {
		return nil, err
	}

	if err := s.create(ctx, note); err != nil {
		if errors.Is(err, store.ErrLimitReached) {
			s.logger.WarnContext(ctx, "note limit reached",
				"limit", s.limits.MaxPerSession)
			return nil, ErrNoteLimitReached
		}
		s.logger.ErrorContext(ctx, "failed to store note",
			"error", err,
			"note_id", note.ID)
		return nil, NewServiceError("add_note", "failed to store note", err)
	}

	s.logger.DebugContext(ctx, "note added", "note_id", note.ID)
	return note, nil
}

func (s *noteServiceImpl) create(ctx context.Context, note *domain.Note) error {
	if s.limits.MaxPerSession > 0 {
		return s.repo.CreateWithinLimit(ctx, note, s.limits.MaxPerSession)
	}
	return s.repo.Create(ctx, note)
}

func (s *noteServiceImpl) List(ctx context.Context, sessionID string) ([]*domain.Note, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	notes, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, NewServiceError("list_notes", "failed to list notes", err)
	}
	return notes, nil
}

func (s *noteServiceImpl) Delete(ctx context.Context, sessionID string, id uuid.UUID) error {
	if err := requireSession(sessionID); err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "is required", domain.ErrInvalidID)
	}

	if err := s.repo.Delete(ctx, sessionID, id); err != nil {
		if !errors.Is(err, store.ErrNoteNotFound) {
			s.logger.ErrorContext(ctx, "failed to delete note",
				"error", err,
				"note_id", id)
		}
		return NewServiceError("delete_note", "failed to delete note", err)
	}
	return nil
}

func (s *noteServiceImpl) Clear(ctx context.Context, sessionID string) (int, error) {
	if err := requireSession(sessionID); err != nil {
		return 0, err
	}
	removed, err := s.repo.DeleteSession(ctx, sessionID)
	if err != nil {
		return 0, NewServiceError("clear_notes", "failed to clear notes", err)
	}
	s.logger.InfoContext(ctx, "session notes cleared", "removed", removed)
	return removed, nil
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return domain.NewValidationError("session", "is required", domain.ErrInvalidID)
	}
	return nil
}
