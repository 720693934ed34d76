package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "output: %s", buf.String())
	assert.Equal(t, "test message", parsed["msg"])
	assert.Equal(t, "INFO", parsed["level"])
	assert.Equal(t, "value", parsed["key"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	var parsed map[string]any
	assert.Error(t, json.Unmarshal([]byte(output), &parsed), "text format should not be valid JSON")
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "INFO")
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: Format("yaml"), Output: &buf})

	logger.Info("hello")

	assert.Contains(t, buf.String(), "INFO  hello")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	assert.NotContains(t, output, "debug")
	assert.NotContains(t, output, "info")
	assert.Contains(t, output, "warn")
	assert.Contains(t, output, "error")
}

func TestDefault(t *testing.T) {
	logger := Default()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
	logger.Debug("visible with -v")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestContext_RoundTrip(t *testing.T) {
	logger := NewDiscard()
	ctx := NewContext(t.Context(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestTestWriter(t *testing.T) {
	n, err := testWriter{t: t}.Write([]byte("test message\n"))
	require.NoError(t, err)
	assert.Equal(t, len("test message\n"), n)
}

func TestVerbosityFromEnv(t *testing.T) {
	tests := map[string]int{
		"1":     2,
		"true":  2,
		"TRUE ": 2,
		"2":     3,
		"0":     0,
		"":      0,
		"yes":   0,
	}
	for in, want := range tests {
		assert.Equal(t, want, VerbosityFromEnv(in), "VerbosityFromEnv(%q)", in)
	}
}

func TestNew_File(t *testing.T) {
	var console, file bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &console, File: &file})

	logger.Info("registered", "email", "ana.lee@school.edu", "committee", "unsc")

	assert.Contains(t, console.String(), "registered")
	assert.Contains(t, console.String(), "email=****.edu")

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &parsed), "file: %s", file.String())
	assert.Equal(t, "registered", parsed["msg"])
	assert.Equal(t, "****.edu", parsed["email"])
	assert.Equal(t, "unsc", parsed["committee"])
}

func TestNew_JSONMasksContactDetails(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("subscribed", "Email", "kim@example.org", "phone", "555-0100")

	assert.NotContains(t, buf.String(), "kim@example.org")
	assert.Contains(t, buf.String(), `"Email":"****.org"`)
	assert.Contains(t, buf.String(), `"phone":"****0100"`)
}

func TestNew_MasksNonStringContactDetails(t *testing.T) {
	var console, file bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &console, File: &file})

	logger.Info("decoded", "phone", 5550100, "emergencyPhone", json.Number("5550199"), "grade", 11)

	for name, buf := range map[string]*bytes.Buffer{"console": &console, "file": &file} {
		var parsed map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "%s: %s", name, buf.String())
		assert.Equal(t, "****0100", parsed["phone"], name)
		assert.Equal(t, "****0199", parsed["emergencyPhone"], name)
		assert.InDelta(t, 11, parsed["grade"], 0, name)
		assert.NotContains(t, buf.String(), "5550100", name)
	}
}

func TestFanout(t *testing.T) {
	var text, js bytes.Buffer
	h := NewFanout(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	logger := slog.New(h).With("run", 1)

	logger.Info("only json")
	logger.Warn("both")

	assert.NotContains(t, text.String(), "only json")
	assert.Contains(t, text.String(), "both")
	assert.Contains(t, text.String(), "run=1")
	assert.Equal(t, 2, strings.Count(js.String(), "\n"))
	assert.True(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
}
