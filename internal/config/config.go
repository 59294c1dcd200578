package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Upload UploadConfig `mapstructure:"upload" validate:"required"`
	Notes  NotesConfig  `mapstructure:"notes"  validate:"required"`
}

// ServerConfig contains HTTP server and logging settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"log_format"       validate:"required,oneof=json text"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains the generative model settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// MaxRetries is the total number of attempts for rate-limited calls.
	MaxRetries   int           `mapstructure:"max_retries"   validate:"gte=0"`
	InitialDelay time.Duration `mapstructure:"initial_delay" validate:"gt=0"`
	MaxDelay     time.Duration `mapstructure:"max_delay"     validate:"gtefield=InitialDelay"`

	// RequestsPerMinute throttles outgoing calls. Zero disables throttling.
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"gte=0"`

	// PromptDir optionally overrides the embedded prompt templates by file name.
	PromptDir string `mapstructure:"prompt_dir" validate:"omitempty,dir"`
}

// UploadConfig bounds chapter page uploads.
type UploadConfig struct {
	MaxFiles     int   `mapstructure:"max_files"      validate:"gt=0"`
	MaxFileBytes int64 `mapstructure:"max_file_bytes" validate:"gt=0"`
}

// NotesConfig bounds session notes.
type NotesConfig struct {
	MaxPerSession int `mapstructure:"max_per_session" validate:"gt=0"`
	MaxLength     int `mapstructure:"max_length"      validate:"gt=0"`
}
