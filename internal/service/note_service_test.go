package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/platform/memstore"
	"github.com/phrazzld/examzen/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNoteService(t *testing.T, repo NoteRepository, limits NoteLimits) NoteService {
	t.Helper()
	svc, err := NewNoteService(repo, limits, nil)
	require.NoError(t, err)
	return svc
}

func TestNewNoteService_NilRepository(t *testing.T) {
	svc, err := NewNoteService(nil, NoteLimits{}, nil)
	assert.Nil(t, svc)
	assert.ErrorContains(t, err, "note repository cannot be nil")
}

func TestNoteService_Add(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		repo := &MockNoteRepository{}
		repo.On("CreateWithinLimit", mock.Anything, mock.MatchedBy(func(n *domain.Note) bool {
			return n.SessionID == sessionID && n.Text == "Krebs cycle makes ATP"
		}), 10).Return(nil)

		svc := newNoteService(t, repo, NoteLimits{MaxPerSession: 10, MaxLength: 100})
		note, err := svc.Add(ctx, sessionID, "  Krebs cycle makes ATP  ")

		require.NoError(t, err)
		assert.Equal(t, "Krebs cycle makes ATP", note.Text)
		assert.NotEqual(t, uuid.Nil, note.ID)
		repo.AssertExpectations(t)
	})

	t.Run("empty text", func(t *testing.T) {
		repo := &MockNoteRepository{}
		svc := newNoteService(t, repo, NoteLimits{})

		_, err := svc.Add(ctx, sessionID, "   ")

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrEmptyContent)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("too long", func(t *testing.T) {
		repo := &MockNoteRepository{}
		svc := newNoteService(t, repo, NoteLimits{MaxLength: 5})

		_, err := svc.Add(ctx, sessionID, "abcdef")

		assert.ErrorIs(t, err, domain.ErrContentTooLong)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing session", func(t *testing.T) {
		repo := &MockNoteRepository{}
		svc := newNoteService(t, repo, NoteLimits{})

		_, err := svc.Add(ctx, "", "text")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("limit reached", func(t *testing.T) {
		repo := &MockNoteRepository{}
		repo.On("CreateWithinLimit", mock.Anything, mock.Anything, 2).Return(store.ErrLimitReached)
		svc := newNoteService(t, repo, NoteLimits{MaxPerSession: 2})

		_, err := svc.Add(ctx, sessionID, "one more")

		assert.Same(t, ErrNoteLimitReached, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := &MockNoteRepository{}
		storeErr := errors.New("store unavailable")
		repo.On("Create", mock.Anything, mock.Anything).Return(storeErr)
		svc := newNoteService(t, repo, NoteLimits{})

		_, err := svc.Add(ctx, sessionID, "text")

		assert.ErrorIs(t, err, storeErr)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "add_note", svcErr.Operation)
	})
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.NewString()
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		repo := &MockNoteRepository{}
		repo.On("Delete", mock.Anything, sessionID, id).Return(store.ErrNoteNotFound)
		svc := newNoteService(t, repo, NoteLimits{})

		err := svc.Delete(ctx, sessionID, id)

		assert.Same(t, ErrNoteNotFound, err)
	})

	t.Run("nil id", func(t *testing.T) {
		repo := &MockNoteRepository{}
		svc := newNoteService(t, repo, NoteLimits{})

		err := svc.Delete(ctx, sessionID, uuid.Nil)

		assert.ErrorIs(t, err, domain.ErrInvalidID)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

// The remaining tests run against the in-memory store to check behavior
// across calls.

func TestNoteService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newNoteService(t, memstore.NewNoteStore(nil), NoteLimits{MaxPerSession: 10, MaxLength: 200})
	alice, bob := uuid.NewString(), uuid.NewString()

	first, err := svc.Add(ctx, alice, "first")
	require.NoError(t, err)
	second, err := svc.Add(ctx, alice, "second")
	require.NoError(t, err)
	_, err = svc.Add(ctx, bob, "bob's note")
	require.NoError(t, err)

	notes, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)

	assert.ErrorIs(t, svc.Delete(ctx, bob, first.ID), ErrNoteNotFound, "sessions are isolated")
	require.NoError(t, svc.Delete(ctx, alice, first.ID))

	removed, err := svc.Clear(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	notes, err = svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, notes)

	notes, err = svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestNoteService_LimitWithStore(t *testing.T) {
	ctx := context.Background()
	svc := newNoteService(t, memstore.NewNoteStore(nil), NoteLimits{MaxPerSession: 3})
	session := uuid.NewString()

	for i := 0; i < 3; i++ {
		_, err := svc.Add(ctx, session, strings.Repeat("x", i+1))
		require.NoError(t, err)
	}
	_, err := svc.Add(ctx, session, "overflow")
	assert.ErrorIs(t, err, ErrNoteLimitReached)

	_, err = svc.Clear(ctx, session)
	require.NoError(t, err)
	_, err = svc.Add(ctx, session, "room again")
	assert.NoError(t, err)
}

func TestNoteService_ConcurrentAddRespectsLimit(t *testing.T) {
	ctx := context.Background()
	notes := memstore.NewNoteStore(nil)
	svc := newNoteService(t, notes, NoteLimits{MaxPerSession: 1})
	session := uuid.NewString()

	const writers = 8
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Add(ctx, session, "note")
		}(i)
	}
	wg.Wait()

	var added int
	for _, err := range errs {
		if err == nil {
			added++
			continue
		}
		assert.ErrorIs(t, err, ErrNoteLimitReached)
	}
	assert.Equal(t, 1, added)

	stored, err := svc.List(ctx, session)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
