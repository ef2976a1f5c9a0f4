package verify

import (
	"context"
	"github.com/saylorsolutions/verifyx/env"
	"github.com/saylorsolutions/verifyx/slogx"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// LogFailuresKey is the environment variable that turns on failure logging for chains without their own logger.
	LogFailuresKey = env.Key("log_failures")
	// LogLevelKey is the environment variable that sets the minimum level for the default failure logger.
	LogLevelKey = env.Key("log_level")
)

var (
	defLogger     *slog.Logger
	defLoggerOnce sync.Once
)

// defaultLogger is configured from the environment on first use.
func defaultLogger() *slog.Logger {
	defLoggerOnce.Do(func() {
		defLogger = NewFailureLogger(os.Stderr, env.Bool(LogFailuresKey, false), env.Level(LogLevelKey, slog.LevelDebug))
	})
	return defLogger
}

// NewFailureLogger creates a logger suitable for [WithLogger] that writes text records to out.
// Attribute keys are deduplicated, so chain data can't repeat the keys failures are logged with.
// If enabled is false the logger discards everything.
func NewFailureLogger(out io.Writer, enabled bool, level slog.Level) *slog.Logger {
	if !enabled || out == nil {
		return slog.New(slogx.Discard())
	}
	return slog.New(slogx.NewDedupeHandler(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})))
}

func logFailure(logger *slog.Logger, err *Error) {
	if logger == nil {
		return
	}
	ctx := context.Background()
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if len(err.data) > 0 {
		attrs := make([]any, 0, len(err.data))
		for k, v := range err.data {
			attrs = append(attrs, slog.String(k, v))
		}
		logger = logger.With(attrs...)
	}
	attrs := []slog.Attr{
		slog.String("verification", err.verification),
		slog.String("subject", err.subject),
		slog.String("kind", err.kind.String()),
	}
	if err.hasIndex {
		attrs = append(attrs, slog.Int("index", err.index))
	}
	logger.LogAttrs(ctx, slog.LevelDebug, err.msg, attrs...)
}
