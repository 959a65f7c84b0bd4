package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures logger construction.
type Option func(*options)

type options struct {
	writer     io.Writer
	extractors []ContextExtractor
	level      slog.Level
	json       bool
}

func newOptions(opts ...Option) options {
	o := options{
		writer: os.Stderr,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWriter sets the log destination. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSON switches the output from text to JSON.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

func (o options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.json {
		return slog.NewJSONHandler(o.writer, ho)
	}
	return slog.NewTextHandler(o.writer, ho)
}
