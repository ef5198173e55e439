// Package logging builds the service's slog logger and carries
// request-scoped loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "execution started")
//
// Error logs name the operation and the entity and carry the whole chain:
//
//	logger.ErrorContext(ctx, "failed to load process",
//	    slog.String("operation", "GetProcess"),
//	    slog.Int64("process_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler returned by New masks credentials and user emails; see
// IsCredential and SecretTag.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error, case-insensitive; anything else means info. format "text" selects
// the text handler, anything else JSON. Debug logging adds source
// locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	switch err := lvl.UnmarshalText([]byte(level)); {
	case err != nil:
		return slog.LevelInfo
	case lvl != slog.LevelDebug && lvl != slog.LevelInfo && lvl != slog.LevelWarn && lvl != slog.LevelError:
		// Offsets such as "info+2" are not part of the config vocabulary.
		return slog.LevelInfo
	default:
		return lvl
	}
}
