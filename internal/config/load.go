package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EXAMZEN"

// CredentialEnvVar is the conventional variable holding the Gemini API key.
const CredentialEnvVar = "GOOGLE_API_KEY"

// ErrMissingCredential is returned when no Gemini API key is configured.
var ErrMissingCredential = errors.New(CredentialEnvVar + " not found in environment variables")

// Options tunes where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, config.yaml is
	// searched for in . and ./config and is optional.
	ConfigFile string

	// EnvFile is the dotenv file loaded before reading the environment.
	// Empty means ".env"; a missing file is not an error.
	EnvFile string
}

// Load reads configuration with default Options.
func Load() (*Config, error) {
	return LoadWithOptions(Options{})
}

// LoadWithOptions reads configuration from defaults, an optional config file,
// an optional dotenv file and the environment, in increasing precedence, and
// validates the result.
func LoadWithOptions(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already set in the process.
	_ = godotenv.Load(envFile)

	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.gemini_api_key", EnvPrefix+"_LLM_GEMINI_API_KEY", CredentialEnvVar); err != nil {
		return nil, fmt.Errorf("failed to bind credential variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.LLM.GeminiAPIKey) == "" {
		return nil, ErrMissingCredential
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-3-flash-preview")
	v.SetDefault("llm.max_retries", 10)
	v.SetDefault("llm.initial_delay", 5*time.Second)
	v.SetDefault("llm.max_delay", 60*time.Second)
	v.SetDefault("llm.requests_per_minute", 0)
	v.SetDefault("llm.prompt_dir", "")

	v.SetDefault("upload.max_files", 30)
	v.SetDefault("upload.max_file_bytes", 10<<20)

	v.SetDefault("notes.max_per_session", 200)
	v.SetDefault("notes.max_length", 10000)
}
