package converter

import (
	"io"
	"log/slog"
)

// Option configures a Converter.
type Option func(*Converter)

// WithBinary overrides the pandoc executable name or path.
func WithBinary(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.binary = name
		}
	}
}

// WithRunner replaces the process runner. Tests use it to avoid real processes.
func WithRunner(r Runner) Option {
	return func(c *Converter) {
		if r != nil {
			c.runner = r
		}
	}
}

// WithLogger sets the logger for conversion progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProfiles replaces the ordered list of rendering profiles.
func WithProfiles(profiles ...Profile) Option {
	return func(c *Converter) {
		if len(profiles) > 0 {
			c.profiles = profiles
		}
	}
}

// WithTitle sets the title used by the fallback profile when the report has none.
func WithTitle(title string) Option {
	return func(c *Converter) {
		if title != "" {
			c.title = title
		}
	}
}

// WithOutput runs pandoc through os/exec with its output streams sent to w.
// It replaces any runner set earlier.
func WithOutput(w io.Writer) Option {
	return func(c *Converter) {
		if w != nil {
			c.runner = ExecRunner{Stdout: w, Stderr: w}
		}
	}
}
