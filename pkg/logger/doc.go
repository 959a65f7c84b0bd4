// Package logger builds slog loggers for command-line runs.
//
// Loggers write human-readable text to stderr by default and can optionally
// forward warnings and errors to Sentry. Context extractors attach values
// carried in the context (such as the run identifier) to every record.
//
//	ctx := logger.WithRunID(context.Background(), logger.NewRunID())
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(logger.RunIDExtractor()),
//	)
//	log.InfoContext(ctx, "converting report", slog.String("file", "acme-corp.md"))
//	// time=... level=INFO msg="converting report" file=acme-corp.md run_id=5f0c...
//
// # Sentry
//
// NewWithSentry falls back to plain stderr logging when the DSN is empty or
// the SDK fails to initialize, so the same call works with and without it.
// Call Flush before the process exits; events are sent asynchronously.
//
//	log := logger.NewWithSentry(logger.SentryConfig{DSN: dsn})
//	defer logger.Flush(2 * time.Second)
package logger
