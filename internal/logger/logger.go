// Package logger configures structured logging for the service.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/samber/oops"
)

const (
	envLocal       = "local"
	envDevelopment = "development"
	envProduction  = "production"
)

// New builds a logger for the environment.
// Local and development default to text output at debug level; production logs JSON at info.
// format overrides the handler when set to "json" or "text".
func New(env, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == envProduction {
		opts.Level = slog.LevelInfo
	}

	if format == "" {
		format = "json"
		if env == envLocal || env == envDevelopment {
			format = "text"
		}
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", "rental-service"))
}

// LogError logs err, expanding oops code and context when present.
func LogError(log *slog.Logger, msg string, err error) {
	if oopsErr, ok := oops.AsOops(err); ok {
		attrs := []any{"error", oopsErr.Error()}
		if code := oopsErr.Code(); code != nil && code != "" {
			attrs = append(attrs, "code", code)
		}
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			attrs = append(attrs, "context", ctx)
		}
		log.Error(msg, attrs...)
		return
	}
	log.Error(msg, "error", err)
}
