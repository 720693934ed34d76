package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

// Format is the console log format selected by --log-format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// LevelTrace sits below Debug and is enabled by -vvv.
const LevelTrace = slog.LevelDebug - 4

// Config describes the logger built by New.
type Config struct {
	Level  slog.Level
	Format Format
	// Output receives console logs. Nil means os.Stderr.
	Output io.Writer
	// File, when set, receives a JSON copy of every record at Level.
	File io.Writer
}

// New builds a logger from cfg. Unknown formats fall back to text. Contact
// details are masked in every output, see ShouldMask.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level, ReplaceAttr: maskAttr}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = NewHandler(output, opts)
	}
	if cfg.File != nil {
		handler = NewFanout(handler, slog.NewJSONHandler(cfg.File, opts))
	}

	return slog.New(handler)
}

// Default returns the logger used before flags are parsed: Warn level, text, stderr.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelWarn})
}

// NewDiscard creates a logger that discards all output.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LevelFromVerbosity maps the count of -v flags to a level.
// 0 is Warn, 1 Info, 2 Debug and anything above is LevelTrace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// VerbosityFromEnv reads a debug environment value: "1" or "true" is Debug
// (2) and "2" is Trace (3). Anything else is 0.
func VerbosityFromEnv(val string) int {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true":
		return 2
	case "2":
		return 3
	default:
		return 0
	}
}

func maskAttr(_ []string, a slog.Attr) slog.Attr {
	if !ShouldMask(a.Key) {
		return a
	}
	if v := a.Value.Resolve(); v.Kind() != slog.KindGroup {
		return slog.String(a.Key, MaskValue(v.String()))
	}
	return a
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest returns a Debug logger writing through t.Log.
func ForTest(t testing.TB) *slog.Logger {
	t.Helper()
	return New(Config{Level: slog.LevelDebug, Output: testWriter{t: t}})
}
