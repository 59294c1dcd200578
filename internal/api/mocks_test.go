package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/generation"
)

// MockAssistant is a mock implementation of service.Assistant for testing
type MockAssistant struct {
	AnalyzeChapterFn func(ctx context.Context, pages []domain.Image) (*generation.Result, error)
	GenerateQuizFn   func(ctx context.Context, topic string, count int) (*generation.Result, error)
	TranslateFn      func(ctx context.Context, text, language string) (*generation.Result, error)
	SummarizeNotesFn func(ctx context.Context, sessionID string) (*generation.Result, error)
}

func (m *MockAssistant) AnalyzeChapter(ctx context.Context, pages []domain.Image) (*generation.Result, error) {
	if m.AnalyzeChapterFn != nil {
		return m.AnalyzeChapterFn(ctx, pages)
	}
	return &generation.Result{Text: "report", Model: "mock-model"}, nil
}

func (m *MockAssistant) GenerateQuiz(ctx context.Context, topic string, count int) (*generation.Result, error) {
	if m.GenerateQuizFn != nil {
		return m.GenerateQuizFn(ctx, topic, count)
	}
	return &generation.Result{Text: "quiz", Model: "mock-model"}, nil
}

func (m *MockAssistant) Translate(ctx context.Context, text, language string) (*generation.Result, error) {
	if m.TranslateFn != nil {
		return m.TranslateFn(ctx, text, language)
	}
	return &generation.Result{Text: "translation", Model: "mock-model"}, nil
}

func (m *MockAssistant) SummarizeNotes(ctx context.Context, sessionID string) (*generation.Result, error) {
	if m.SummarizeNotesFn != nil {
		return m.SummarizeNotesFn(ctx, sessionID)
	}
	return &generation.Result{Text: "summary", Model: "mock-model"}, nil
}

// MockNoteService is a mock implementation of service.NoteService for testing
type MockNoteService struct {
	AddFn    func(ctx context.Context, sessionID, text string) (*domain.Note, error)
	ListFn   func(ctx context.Context, sessionID string) ([]*domain.Note, error)
	DeleteFn func(ctx context.Context, sessionID string, id uuid.UUID) error
	ClearFn  func(ctx context.Context, sessionID string) (int, error)
}

func (m *MockNoteService) Add(ctx context.Context, sessionID, text string) (*domain.Note, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, sessionID, text)
	}
	return domain.NewNote(sessionID, text)
}

func (m *MockNoteService) List(ctx context.Context, sessionID string) ([]*domain.Note, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockNoteService) Delete(ctx context.Context, sessionID string, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, sessionID, id)
	}
	return nil
}

func (m *MockNoteService) Clear(ctx context.Context, sessionID string) (int, error) {
	if m.ClearFn != nil {
		return m.ClearFn(ctx, sessionID)
	}
	return 0, nil
}
