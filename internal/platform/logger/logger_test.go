package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/examzen/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the slog default logger replaced by Setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetup_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := logger.Setup(logger.LoggerConfig{Level: "debug", Output: &buf})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Debug("page received", "index", 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "page received", entry["msg"])
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, float64(1), entry["index"])
	assert.Same(t, l, slog.Default(), "Setup installs the logger as default")
}

func TestSetup_TextFormat(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := logger.Setup(logger.LoggerConfig{Level: "info", Format: "text", Output: &buf})
	require.NoError(t, err)

	l.Info("ready")
	assert.Contains(t, buf.String(), "msg=ready")
}

func TestSetup_LevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestSetup_UnknownFormat(t *testing.T) {
	_, err := logger.Setup(logger.LoggerConfig{Format: "xml"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  slog.Level
		valid bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.valid, ok)
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default()
	custom := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))

	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, fallback, logger.FromContextOrDefault(nil, fallback))
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, custom, logger.FromContextOrDefault(logger.WithLogger(context.Background(), custom), fallback))
}

func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.WithLogger(context.Background(), nil)
	})
}

func TestTestLogBuffer_GetLogEntries(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	l.Info("one")
	l.Warn("two", "k", "v")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[1]["msg"])
	assert.Equal(t, "v", entries[1]["k"])
}
