package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/phrazzld/examzen/internal/redact"
)

// Default retry settings.
const (
	DefaultMaxRetries   = 10
	DefaultInitialDelay = 5 * time.Second
	DefaultMaxDelay     = 60 * time.Second
)

// Config controls how many times an invocation is attempted and how long the
// executor pauses between attempts.
type Config struct {
	// MaxRetries is the total number of attempts. Values below 2 mean a
	// single attempt with no pause.
	MaxRetries int

	// InitialDelay is the pause before the second attempt.
	InitialDelay time.Duration

	// MaxDelay caps every pause.
	MaxDelay time.Duration
}

// DefaultConfig returns the default retry settings.
func DefaultConfig() Config {
	return Config{
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
		MaxDelay:     DefaultMaxDelay,
	}
}

// normalized fills zero or invalid fields and keeps InitialDelay under the cap.
func (c Config) normalized() Config {
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	if c.InitialDelay > c.MaxDelay {
		c.InitialDelay = c.MaxDelay
	}
	return c
}

// Executor runs invocations under a retry policy.
type Executor struct {
	config   Config
	logger   *slog.Logger
	newTimer func() backoff.Timer
}

// Option customizes an Executor.
type Option func(*Executor)

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTimer replaces the wall-clock timer used for pauses. The factory is
// called once per Do so each invocation gets its own timer.
func WithTimer(newTimer func() backoff.Timer) Option {
	return func(e *Executor) {
		e.newTimer = newTimer
	}
}

// NewExecutor creates an Executor with the given configuration.
func NewExecutor(config Config, opts ...Option) *Executor {
	e := &Executor{
		config: config.normalized(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration.
func (e *Executor) Config() Config {
	return e.config
}

// newBackOff builds the per-invocation delay schedule. Jitter is disabled so
// pause k is exactly min(InitialDelay*2^(k-1), MaxDelay).
func (e *Executor) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = e.config.InitialDelay
	exp.RandomizationFactor = 0
	exp.Multiplier = 2
	exp.MaxInterval = e.config.MaxDelay
	exp.MaxElapsedTime = 0

	retries := 0
	if e.config.MaxRetries > 1 {
		retries = e.config.MaxRetries - 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(retries)), ctx)
}

// Do calls op until it succeeds, fails with a Terminal error, or the attempt
// budget is spent. The last error is returned unchanged. A cancelled ctx ends
// a pause early and Do returns the context error.
func Do[T any](ctx context.Context, e *Executor, op func() (T, error)) (T, error) {
	attempt := 0

	operation := func() (T, error) {
		attempt++
		result, err := op()
		if err == nil {
			if attempt > 1 {
				e.logger.InfoContext(ctx, "call succeeded after retry", "attempt", attempt)
			}
			return result, nil
		}
		if Classify(err) == Terminal {
			e.logger.DebugContext(ctx, "terminal failure, not retrying",
				"attempt", attempt,
				"error", redact.Error(err))
			return result, backoff.Permanent(err)
		}
		return result, err
	}

	notify := func(err error, delay time.Duration) {
		e.logger.InfoContext(ctx, "retryable failure, backing off",
			"attempt", attempt,
			"max_attempts", e.config.MaxRetries,
			"delay_seconds", delay.Seconds(),
			"error", redact.Error(err))
	}

	var timer backoff.Timer
	if e.newTimer != nil {
		timer = e.newTimer()
	}

	result, err := backoff.RetryNotifyWithTimerAndData(operation, e.newBackOff(ctx), notify, timer)
	if err != nil && attempt > 1 && Classify(err) == Retryable && ctx.Err() == nil {
		e.logger.WarnContext(ctx, "retry attempts exhausted",
			"attempts", attempt,
			"error", redact.Error(err))
	}
	return result, err
}

// Run is Do for invocations that produce no value.
func Run(ctx context.Context, e *Executor, op func() error) error {
	_, err := Do(ctx, e, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}
