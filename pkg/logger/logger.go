// Package logger provides the structured, levelled logger used across
// TerraQuest, built on log/slog.
//
// WithCtx returns a logger pre-tagged with the request ID injected by the
// logging middleware, so every line emitted from a handler or service is
// correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("booking created", "booking_id", id)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		// Structured JSON for log aggregators.
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		// Human-readable for dev.
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Setup attaches the MongoDB log sink alongside the default handler when
// LOG_MONGO_URI is configured. Call once at boot, after config.Load.
func Setup() {
	uri := config.Get("LOG_MONGO_URI", "")
	if uri == "" {
		return
	}
	mh, err := NewMongoHandler(
		uri,
		config.Get("LOG_MONGO_DB", "terraquest"),
		config.Get("LOG_MONGO_COLLECTION", "logs"),
	)
	if err != nil {
		Warn("logger: mongo sink unavailable", "error", err)
		return
	}
	UseHandler(NewMultiHandler(L.Handler(), mh))
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the per-request logger stored in ctx, or the base logger
// when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a pre-tagged *slog.Logger into ctx. Called by the
// logging middleware; application code rarely needs it.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// UseHandler replaces the process logger's handler. Used at boot to attach
// the MongoDB sink when LOG_MONGO_URI is configured.
func UseHandler(h slog.Handler) {
	L = slog.New(h)
	slog.SetDefault(L)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
