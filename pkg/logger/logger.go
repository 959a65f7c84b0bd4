package logger

import (
	"io"
	"log/slog"
)

// New creates a logger writing to stderr (text, info level) unless options say otherwise.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts...)
	return slog.New(newDecorator(o.handler(), o.extractors...))
}

// NewNope creates a logger that discards all output.
// Packages use it as the default when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
