package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/examzen/internal/domain"
	"github.com/phrazzld/examzen/internal/generation"
	"github.com/phrazzld/examzen/internal/prompt"
)

// MaxTranslationLength bounds the text accepted for translation, in characters.
const MaxTranslationLength = 20000

// Assistant runs the study features backed by the generative model. Every
// method makes at most one generator call.
type Assistant interface {
	// AnalyzeChapter summarizes the chapter shown on pages and lists the ten
	// most likely exam questions.
	AnalyzeChapter(ctx context.Context, pages []domain.Image) (*generation.Result, error)

	// GenerateQuiz writes a multiple-choice quiz on topic. A count of zero
	// means prompt.DefaultQuestionCount.
	GenerateQuiz(ctx context.Context, topic string, count int) (*generation.Result, error)

	// Translate translates text into language, which must be one of
	// domain.Languages.
	Translate(ctx context.Context, text, language string) (*generation.Result, error)

	// SummarizeNotes turns the session's notes into a revision sheet.
	SummarizeNotes(ctx context.Context, sessionID string) (*generation.Result, error)
}

// AssistantConfig holds the assistant's input limits.
type AssistantConfig struct {
	// MaxPages bounds the pages in one analysis. Zero means no limit.
	MaxPages int
}

type assistantImpl struct {
	generator generation.Generator
	prompts   *prompt.Builder
	notes     NoteRepository
	config    AssistantConfig
	logger    *slog.Logger
}

// NewAssistant creates an Assistant. notes may be nil, in which case
// SummarizeNotes fails.
func NewAssistant(
	generator generation.Generator,
	prompts *prompt.Builder,
	notes NoteRepository,
	config AssistantConfig,
	logger *slog.Logger,
) (Assistant, error) {
	if generator == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "generator cannot be nil"}
	}
	if prompts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "prompt builder cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &assistantImpl{
		generator: generator,
		prompts:   prompts,
		notes:     notes,
		config:    config,
		logger:    logger.With("component", "assistant"),
	}, nil
}

func (a *assistantImpl) AnalyzeChapter(ctx context.Context, pages []domain.Image) (*generation.Result, error) {
	if err := domain.ValidatePages(pages, a.config.MaxPages); err != nil {
		return nil, err
	}

	instruction, err := a.prompts.Analysis(len(pages))
	if err != nil {
		return nil, NewServiceError("analyze_chapter", "failed to build prompt", err)
	}

	return a.generate(ctx, "analyze_chapter", generation.Request{Prompt: instruction, Images: pages})
}

func (a *assistantImpl) GenerateQuiz(ctx context.Context, topic string, count int) (*generation.Result, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, domain.NewValidationError("topic", "is required", domain.ErrEmptyContent)
	}
	if count < 0 || count > prompt.MaxQuestionCount {
		return nil, domain.NewValidationError("count",
			fmt.Sprintf("must be between 1 and %d", prompt.MaxQuestionCount), domain.ErrInvalidQuestionCount)
	}

	instruction, err := a.prompts.Quiz(topic, count)
	if err != nil {
		return nil, NewServiceError("generate_quiz", "failed to build prompt", err)
	}

	return a.generate(ctx, "generate_quiz", generation.Request{Prompt: instruction})
}

func (a *assistantImpl) Translate(ctx context.Context, text, language string) (*generation.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "is required", domain.ErrEmptyContent)
	}
	if utf8.RuneCountInString(text) > MaxTranslationLength {
		return nil, domain.NewValidationError("text",
			fmt.Sprintf("must be at most %d characters", MaxTranslationLength), domain.ErrContentTooLong)
	}
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return nil, err
	}

	instruction, err := a.prompts.Translation(text, lang)
	if err != nil {
		return nil, NewServiceError("translate", "failed to build prompt", err)
	}

	return a.generate(ctx, "translate", generation.Request{Prompt: instruction})
}

func (a *assistantImpl) SummarizeNotes(ctx context.Context, sessionID string) (*generation.Result, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if a.notes == nil {
		return nil, &ServiceError{Operation: "summarize_notes", Message: "notes are not available"}
	}

	notes, err := a.notes.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, NewServiceError("summarize_notes", "failed to list notes", err)
	}
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}

	texts := make([]string, 0, len(notes))
	for _, n := range notes {
		texts = append(texts, n.Text)
	}

	instruction, err := a.prompts.NotesSummary(texts)
	if err != nil {
		return nil, NewServiceError("summarize_notes", "failed to build prompt", err)
	}

	return a.generate(ctx, "summarize_notes", generation.Request{Prompt: instruction})
}

func (a *assistantImpl) generate(ctx context.Context, operation string, req generation.Request) (*generation.Result, error) {
	a.logger.DebugContext(ctx, "requesting generation",
		"operation", operation,
		"prompt_length", len(req.Prompt),
		"image_count", len(req.Images))

	result, err := a.generator.Generate(ctx, req)
	if err != nil {
		return nil, NewServiceError(operation, "generation failed",
			fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err))
	}

	a.logger.InfoContext(ctx, "generation completed",
		"operation", operation,
		"model", result.Model,
		"response_length", len(result.Text))
	return result, nil
}
