// Package main implements the ExamZen API server, which turns chapter page
// photos, quiz topics and session notes into study material using the
// Gemini API.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "examzen server: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application and serves until a
// shutdown signal arrives or ctx is cancelled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
