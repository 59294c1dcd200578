package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/examzen/internal/config"
)

// loadAppConfig loads the application configuration from defaults, the
// optional config file, .env and the environment.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the effective settings. The credential is reported only
// as present or absent.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"max_retries", cfg.LLM.MaxRetries,
		"upload_max_files", cfg.Upload.MaxFiles)
	logger.Debug("LLM configuration",
		"api_key_present", cfg.LLM.GeminiAPIKey != "",
		"initial_delay", cfg.LLM.InitialDelay,
		"max_delay", cfg.LLM.MaxDelay,
		"requests_per_minute", cfg.LLM.RequestsPerMinute,
		"prompt_dir", cfg.LLM.PromptDir)
}
