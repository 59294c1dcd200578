package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockNoteRepository mocks the NoteRepository interface
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) CreateWithinLimit(ctx context.Context, note *domain.Note, limit int) error {
	args := m.Called(ctx, note, limit)
	return args.Error(0)
}

func (m *MockNoteRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.Note, error) {
	args := m.Called(ctx, sessionID)
	notes, _ := args.Get(0).([]*domain.Note)
	return notes, args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, sessionID string, id uuid.UUID) error {
	args := m.Called(ctx, sessionID, id)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteSession(ctx context.Context, sessionID string) (int, error) {
	args := m.Called(ctx, sessionID)
	return args.Int(0), args.Error(1)
}
