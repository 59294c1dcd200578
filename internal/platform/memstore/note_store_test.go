package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNote(t *testing.T, session, text string) *domain.Note {
	t.Helper()
	n, err := domain.NewNote(session, text)
	require.NoError(t, err)
	return n
}

func TestNoteStore_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)

	first := mustNote(t, "s1", "first")
	second := mustNote(t, "s1", "second")
	other := mustNote(t, "s2", "other session")
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))
	require.NoError(t, s.Create(ctx, other))

	notes, err := s.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)

	count, err := s.CountBySession(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	empty, err := s.ListBySession(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestNoteStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)
	n := mustNote(t, "s1", "original")
	require.NoError(t, s.Create(ctx, n))

	n.Text = "changed by caller"
	notes, err := s.ListBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", notes[0].Text)

	notes[0].Text = "changed via list"
	again, err := s.ListBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Text)
}

func TestNoteStore_CreateInvalid(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)

	assert.ErrorIs(t, s.Create(ctx, nil), store.ErrInvalidEntity)

	err := s.Create(ctx, &domain.Note{ID: uuid.New(), SessionID: "s1"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}

func TestNoteStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)
	a := mustNote(t, "s1", "a")
	b := mustNote(t, "s1", "b")
	c := mustNote(t, "s1", "c")
	for _, n := range []*domain.Note{a, b, c} {
		require.NoError(t, s.Create(ctx, n))
	}

	require.NoError(t, s.Delete(ctx, "s1", b.ID))

	notes, err := s.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, a.ID, notes[0].ID)
	assert.Equal(t, c.ID, notes[1].ID)

	assert.ErrorIs(t, s.Delete(ctx, "s1", b.ID), store.ErrNoteNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "s2", a.ID), store.ErrNoteNotFound, "other sessions cannot delete")
}

func TestNoteStore_DeleteSession(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)
	require.NoError(t, s.Create(ctx, mustNote(t, "s1", "a")))
	require.NoError(t, s.Create(ctx, mustNote(t, "s1", "b")))
	require.NoError(t, s.Create(ctx, mustNote(t, "s2", "c")))

	removed, err := s.DeleteSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	count, _ := s.CountBySession(ctx, "s1")
	assert.Zero(t, count)
	count, _ = s.CountBySession(ctx, "s2")
	assert.Equal(t, 1, count)

	removed, err = s.DeleteSession(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestNoteStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := domain.NewNote("shared", fmt.Sprintf("note %d", i))
			if err == nil {
				_ = s.Create(ctx, n)
			}
		}(i)
	}
	wg.Wait()

	count, err := s.CountBySession(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestNoteStore_CreateWithinLimit(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)

	require.NoError(t, s.CreateWithinLimit(ctx, mustNote(t, "s1", "one"), 2))
	require.NoError(t, s.CreateWithinLimit(ctx, mustNote(t, "s1", "two"), 2))
	err := s.CreateWithinLimit(ctx, mustNote(t, "s1", "three"), 2)
	assert.ErrorIs(t, err, store.ErrLimitReached)

	require.NoError(t, s.CreateWithinLimit(ctx, mustNote(t, "s2", "other session"), 2))

	count, err := s.CountBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNoteStore_ConcurrentCreateWithinLimit(t *testing.T) {
	ctx := context.Background()
	s := NewNoteStore(nil)
	const limit = 3

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		refused int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := domain.NewNote("shared", fmt.Sprintf("note %d", i))
			if err != nil {
				return
			}
			err = s.CreateWithinLimit(ctx, n, limit)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
			} else if errors.Is(err, store.ErrLimitReached) {
				refused++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, limit, created)
	assert.Equal(t, 50-limit, refused)
	count, err := s.CountBySession(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, limit, count)
}
