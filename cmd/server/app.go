package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/examzen/internal/config"
	"github.com/phrazzld/examzen/internal/generation"
	"github.com/phrazzld/examzen/internal/platform/gemini"
	"github.com/phrazzld/examzen/internal/platform/memstore"
	"github.com/phrazzld/examzen/internal/prompt"
	"github.com/phrazzld/examzen/internal/service"
	"github.com/phrazzld/examzen/internal/store"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator generation.Generator
	noteStore store.NoteStore

	assistant   service.Assistant
	noteService service.NoteService
}

// appOption customizes newApplication.
type appOption func(*application)

// withGenerator replaces the Gemini generator.
func withGenerator(g generation.Generator) appOption {
	return func(app *application) {
		app.generator = g
	}
}

// newApplication creates the application with all dependencies initialized.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...appOption,
) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(app)
	}

	logConfig(logger, cfg)

	if app.generator == nil {
		generator, err := gemini.NewGeminiGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		app.generator = generator
	}

	prompts, err := prompt.NewBuilder(cfg.LLM.PromptDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	app.noteStore = memstore.NewNoteStore(logger)

	app.noteService, err = service.NewNoteService(app.noteStore, service.NoteLimits{
		MaxPerSession: cfg.Notes.MaxPerSession,
		MaxLength:     cfg.Notes.MaxLength,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create note service: %w", err)
	}

	app.assistant, err = service.NewAssistant(app.generator, prompts, app.noteStore, service.AssistantConfig{
		MaxPages: cfg.Upload.MaxFiles,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until shutdown.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
