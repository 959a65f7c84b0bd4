package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
	// MinLevel selects what is forwarded: slog.LevelError sends errors only, anything lower sends warnings too.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally and forwards to Sentry.
// An empty DSN or a failed SDK init yields a local-only logger.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	o := newOptions(opts...)
	local := o.handler()

	if cfg.DSN == "" {
		return slog.New(newDecorator(local, o.extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Warn("sentry disabled", slog.String("error", err.Error()))
		return slog.New(newDecorator(local, o.extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(newDecorator(fanout{local, remote}, o.extractors...))
}

// Flush waits up to timeout for buffered Sentry events. It is a no-op without Sentry.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
