// Package logger configures the application's structured logging.
//
// It wraps log/slog: Setup builds a JSON or text handler at the configured
// level and installs it as the default logger. Request-scoped loggers travel in
// a context.Context via WithLogger and FromContext.
package logger
