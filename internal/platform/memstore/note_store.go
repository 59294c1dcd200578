package memstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/platform/logger"
	"github.com/phrazzld/examzen/internal/store"
)

// NoteStore implements store.NoteStore with a map of session ID to notes in
// creation order.
type NoteStore struct {
	mutex    sync.RWMutex
	sessions map[string][]*domain.Note
	logger   *slog.Logger
}

// NewNoteStore creates an empty NoteStore. If logger is nil, the default
// logger is used.
func NewNoteStore(logger *slog.Logger) *NoteStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteStore{
		sessions: make(map[string][]*domain.Note),
		logger:   logger.With(slog.String("component", "note_store")),
	}
}

var _ store.NoteStore = (*NoteStore)(nil)

// Create implements store.NoteStore.Create.
func (s *NoteStore) Create(ctx context.Context, note *domain.Note) error {
	return s.create(ctx, note, 0)
}

// CreateWithinLimit implements store.NoteStore.CreateWithinLimit. The count
// and the insert happen under one lock.
func (s *NoteStore) CreateWithinLimit(ctx context.Context, note *domain.Note, limit int) error {
	return s.create(ctx, note, limit)
}

// create stores a copy of note. A positive limit caps the session size.
func (s *NoteStore) create(ctx context.Context, note *domain.Note, limit int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if note == nil {
		return fmt.Errorf("%w: note cannot be nil", store.ErrInvalidEntity)
	}
	if err := note.Validate(); err != nil {
		log.Warn("note validation failed during create",
			slog.String("error", err.Error()),
			slog.String("note_id", note.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	stored := *note

	s.mutex.Lock()
	if limit > 0 && len(s.sessions[note.SessionID]) >= limit {
		s.mutex.Unlock()
		log.Debug("session note limit reached", slog.Int("limit", limit))
		return store.ErrLimitReached
	}
	s.sessions[note.SessionID] = append(s.sessions[note.SessionID], &stored)
	count := len(s.sessions[note.SessionID])
	s.mutex.Unlock()

	log.Debug("note created",
		slog.String("note_id", note.ID.String()),
		slog.Int("session_notes", count))
	return nil
}

// ListBySession implements store.NoteStore.ListBySession. The returned
// notes are copies.
func (s *NoteStore) ListBySession(_ context.Context, sessionID string) ([]*domain.Note, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	notes := s.sessions[sessionID]
	result := make([]*domain.Note, 0, len(notes))
	for _, n := range notes {
		c := *n
		result = append(result, &c)
	}
	return result, nil
}

// Delete implements store.NoteStore.Delete.
func (s *NoteStore) Delete(ctx context.Context, sessionID string, id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	notes := s.sessions[sessionID]
	for i, n := range notes {
		if n.ID != id {
			continue
		}
		remaining := append(notes[:i:i], notes[i+1:]...)
		if len(remaining) == 0 {
			delete(s.sessions, sessionID)
		} else {
			s.sessions[sessionID] = remaining
		}
		logger.FromContextOrDefault(ctx, s.logger).Debug("note deleted",
			slog.String("note_id", id.String()))
		return nil
	}
	return store.ErrNoteNotFound
}

// DeleteSession implements store.NoteStore.DeleteSession.
func (s *NoteStore) DeleteSession(ctx context.Context, sessionID string) (int, error) {
	s.mutex.Lock()
	removed := len(s.sessions[sessionID])
	delete(s.sessions, sessionID)
	s.mutex.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("session notes cleared",
		slog.Int("removed", removed))
	return removed, nil
}

// CountBySession implements store.NoteStore.CountBySession.
func (s *NoteStore) CountBySession(_ context.Context, sessionID string) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sessions[sessionID]), nil
}
