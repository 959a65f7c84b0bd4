package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/reportmail/pkg/logger"
	"github.com/dmitrymomot/reportmail/pkg/report"
	"github.com/dmitrymomot/reportmail/pkg/sanitizer"
)

// DefaultBinary is the converter executable looked up on PATH.
const DefaultBinary = "pandoc"

// Converter produces PDF files from report sources.
type Converter struct {
	runner   Runner
	logger   *slog.Logger
	binary   string
	title    string
	profiles []Profile
}

// Document describes the PDF chosen or produced for a report.
type Document struct {
	Source    string // Input path as given
	Path      string // PDF path
	Profile   string // Name of the profile that produced the file, if converted
	Converted bool   // pandoc ran and produced Path
	Cached    bool   // Path existed before the run and was reused
}

// New creates a Converter that runs pandoc through os/exec.
func New(opts ...Option) *Converter {
	c := &Converter{
		runner:   ExecRunner{Stdout: os.Stderr, Stderr: os.Stderr},
		logger:   logger.NewNope(),
		binary:   DefaultBinary,
		title:    DefaultTitle,
		profiles: DefaultProfiles(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert returns a PDF for the report at input, converting it if needed.
func (c *Converter) Convert(ctx context.Context, input string) (*Document, error) {
	if _, err := os.Stat(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	if report.IsPDF(input) {
		c.logger.InfoContext(ctx, "using existing PDF", slog.String("file", filepath.Base(input)))
		return &Document{Source: input, Path: input}, nil
	}

	target := report.PDFPath(input)
	if fileExists(target) {
		c.logger.InfoContext(ctx, "using existing PDF", slog.String("file", filepath.Base(target)))
		return &Document{Source: input, Path: target, Cached: true}, nil
	}

	if err := c.checkInstalled(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Join(ErrNotInstalled, err)
	}

	title := c.reportTitle(ctx, input)

	c.logger.InfoContext(ctx, "converting report to PDF", slog.String("file", filepath.Base(input)))

	var failures []error
	for i, p := range c.profiles {
		a := c.attempt(ctx, p, input, target, title)
		if a.Succeeded() {
			c.logger.InfoContext(ctx, "PDF created",
				slog.String("file", filepath.Base(a.Path)),
				slog.String("profile", a.Profile),
			)
			return &Document{Source: input, Path: a.Path, Profile: a.Profile, Converted: true}, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		failures = append(failures, a)
		if i < len(c.profiles)-1 {
			c.logger.WarnContext(ctx, "PDF conversion failed, trying next profile",
				slog.String("profile", a.Profile),
				slog.String("error", a.Reason.Error()),
			)
		}
	}

	return nil, errors.Join(append([]error{ErrConversionFailed}, failures...)...)
}

// checkInstalled runs "pandoc --version". Its version banner is not shown.
func (c *Converter) checkInstalled(ctx context.Context) error {
	r := c.runner
	if er, ok := r.(ExecRunner); ok {
		er.Stdout, er.Stderr = io.Discard, io.Discard
		r = er
	}
	return r.Run(ctx, c.binary, "--version")
}

// attempt runs a single profile. Success needs a zero exit status and the output file.
func (c *Converter) attempt(ctx context.Context, p Profile, input, output, title string) Attempt {
	if err := c.runner.Run(ctx, c.binary, p.Args(input, output, title)...); err != nil {
		return failed(p.Name, err)
	}
	if !fileExists(output) {
		return failed(p.Name, fmt.Errorf("%s exited successfully but %s was not written", c.binary, output))
	}
	return succeeded(p.Name, output)
}

// reportTitle reads the markdown title for the fallback profile, stripped of markup.
// Unreadable or malformed sources and untitled reports yield the configured title.
func (c *Converter) reportTitle(ctx context.Context, input string) string {
	source, err := os.ReadFile(input)
	if err != nil {
		return c.title
	}
	meta, err := report.ParseMetadata(source)
	if err != nil {
		c.logger.DebugContext(ctx, "ignoring report front matter", slog.String("error", err.Error()))
		return c.title
	}
	title := strings.TrimSpace(sanitizer.PlainText(meta.Title))
	if title == "" {
		return c.title
	}
	return title
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
