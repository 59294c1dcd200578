package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/examzen/internal/config"
	"github.com/phrazzld/examzen/internal/generation"
	"github.com/phrazzld/examzen/internal/redact"
	"github.com/phrazzld/examzen/internal/retry"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ContentGenerator is the part of the genai client the generator uses.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements generation.Generator using the Gemini API.
type GeminiGenerator struct {
	logger   *slog.Logger
	models   ContentGenerator
	model    string
	executor *retry.Executor
	limiter  *rate.Limiter
}

// Option customizes a GeminiGenerator.
type Option func(*options)

type options struct {
	models       ContentGenerator
	retryOptions []retry.Option
}

// WithContentGenerator replaces the genai client, mainly for tests.
func WithContentGenerator(models ContentGenerator) Option {
	return func(o *options) {
		o.models = models
	}
}

// WithRetryOptions passes options through to the retry executor.
func WithRetryOptions(opts ...retry.Option) Option {
	return func(o *options) {
		o.retryOptions = append(o.retryOptions, opts...)
	}
}

// NewGeminiGenerator validates cfg and creates a generator. Unless a content
// generator is injected, a genai client for the Gemini API backend is built
// from cfg.GeminiAPIKey.
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	opts ...Option,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.models == nil {
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
				generation.ErrInvalidConfig, redact.Error(err))
		}
		o.models = client.Models
	}

	retryOpts := append([]retry.Option{retry.WithLogger(logger)}, o.retryOptions...)
	executor := retry.NewExecutor(retry.Config{
		MaxRetries:   cfg.MaxRetries,
		InitialDelay: cfg.InitialDelay,
		MaxDelay:     cfg.MaxDelay,
	}, retryOpts...)

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	logger.InfoContext(ctx, "Gemini generator initialized",
		"model", cfg.ModelName,
		"max_retries", executor.Config().MaxRetries,
		"requests_per_minute", cfg.RequestsPerMinute)

	return &GeminiGenerator{
		logger:   logger,
		models:   o.models,
		model:    cfg.ModelName,
		executor: executor,
		limiter:  limiter,
	}, nil
}

// Model returns the configured model name.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends the request to Gemini, retrying rate-limited calls.
func (g *GeminiGenerator) Generate(ctx context.Context, req generation.Request) (*generation.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contents := buildContents(req)
	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(req.Prompt),
		"image_count", len(req.Images))

	resp, err := retry.Do(ctx, g.executor, func() (*genai.GenerateContentResponse, error) {
		if g.limiter != nil {
			if err := g.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		return g.models.GenerateContent(ctx, g.model, contents, nil)
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.model,
			"retryable", retry.IsRetryable(err),
			"error", redact.Error(err))
		return nil, err
	}

	text, finishReason, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Unusable Gemini response",
			"finish_reason", finishReason,
			"error", err)
		return nil, err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", g.model,
		"finish_reason", finishReason,
		"response_length", len(text))

	return &generation.Result{
		Text:         text,
		Model:        g.model,
		FinishReason: finishReason,
	}, nil
}

var _ generation.Generator = (*GeminiGenerator)(nil)
