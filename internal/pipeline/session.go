package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/reportmail/internal/config"
	"github.com/dmitrymomot/reportmail/pkg/composer"
	"github.com/dmitrymomot/reportmail/pkg/converter"
	"github.com/dmitrymomot/reportmail/pkg/logger"
	"github.com/dmitrymomot/reportmail/pkg/mailer"
	"github.com/dmitrymomot/reportmail/pkg/mailer/graph"
	"github.com/dmitrymomot/reportmail/pkg/oauth"
	"github.com/dmitrymomot/reportmail/pkg/report"
)

const (
	bannerTitle = "Report Email Sender"
	bannerWidth = 60
)

// Converter produces the PDF for a report.
type Converter interface {
	Convert(ctx context.Context, input string) (*converter.Document, error)
}

// Request names the report to deliver. Empty fields fall back to the configuration.
type Request struct {
	ReportPath string
	Recipient  string
	ReportType string
}

// Result describes a finished delivery attempt.
type Result struct {
	Failure   error // Set when the mail API rejected the message or could not be reached
	Report    string
	Domain    string
	PDF       string
	Recipient string
	Subject   string
	Method    string
	Delivered bool
}

// Session delivers reports with one configuration.
type Session struct {
	cfg       *config.Config
	out       io.Writer
	logger    *slog.Logger
	converter Converter
	composer  *composer.Composer
	mailer    *mailer.Mailer
	method    string
	auth      string
}

// New builds a Session. ctx bounds token requests made by the Graph provider.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Session, error) {
	o := options{
		out:    os.Stdout,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		cfg:    cfg,
		out:    o.out,
		logger: o.logger,
	}

	if o.sender != nil {
		s.method, s.auth = "custom sender", "custom sender"
		s.mailer = mailer.New(o.sender, mailer.WithLogger(o.logger))
	} else {
		p, err := newProvider(ctx, cfg, o)
		if err != nil {
			return nil, err
		}
		s.method, s.auth = p.method, p.auth
		s.mailer = mailer.New(p.sender, mailer.WithLogger(o.logger))
	}

	s.converter = o.converter
	if s.converter == nil {
		s.converter = converter.New(converter.WithLogger(o.logger))
	}

	var composerOpts []composer.Option
	if o.now != nil {
		composerOpts = append(composerOpts, composer.WithClock(o.now))
	}
	s.composer = composer.New(cfg.EmailTemplate, cfg.Signature(), composerOpts...)

	return s, nil
}

// Deliver converts, composes and sends one report.
//
// A rejected or unreachable mail API is not an error: the failure is printed
// and returned in Result with Delivered unset. Every other problem is returned
// as an error and nothing further is attempted.
func (s *Session) Deliver(ctx context.Context, req Request) (*Result, error) {
	if _, err := os.Stat(req.ReportPath); err != nil {
		return nil, fmt.Errorf("%w: %s", converter.ErrInputNotFound, req.ReportPath)
	}

	res := &Result{
		Report: filepath.Base(req.ReportPath),
		Domain: report.Domain(req.ReportPath),
		Method: s.method,
	}
	s.banner(res)

	doc, err := s.converter.Convert(ctx, req.ReportPath)
	if err != nil {
		return nil, err
	}
	res.PDF = doc.Path

	reportType := req.ReportType
	if reportType == "" {
		reportType = s.cfg.ReportType
	}
	msg := s.composer.Compose(res.Domain, reportType)
	res.Subject = msg.Subject

	res.Recipient = strings.TrimSpace(req.Recipient)
	if res.Recipient == "" {
		res.Recipient = strings.TrimSpace(s.cfg.DefaultRecipient)
	}
	if res.Recipient == "" {
		return nil, ErrNoRecipient
	}

	attachment, err := mailer.AttachFile(doc.Path, mailer.ContentTypePDF)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "composed message",
		slog.String("subject", msg.Subject),
		slog.String("attachment", attachment.Filename),
		slog.Int("bytes", len(attachment.Content)),
	)

	fmt.Fprintf(s.out, "Sending email to %s via %s...\n", res.Recipient, s.method)
	err = s.mailer.Send(ctx, &mailer.Email{
		To:          []string{res.Recipient},
		Subject:     msg.Subject,
		Text:        msg.Body,
		Attachments: []mailer.Attachment{attachment},
	})
	switch {
	case err == nil:
	case errors.Is(err, oauth.ErrAuthFailed), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	default:
		res.Failure = err
		s.failure(err)
		return res, nil
	}

	res.Delivered = true
	fmt.Fprintf(s.out, "Email sent successfully to %s\n", res.Recipient)
	s.summary(res)
	return res, nil
}

func (s *Session) banner(res *Result) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(s.out, "\n%s\n%s\n%s\n", rule, bannerTitle, rule)
	fmt.Fprintf(s.out, "Report: %s\n", res.Report)
	fmt.Fprintf(s.out, "Domain: %s\n", res.Domain)
	fmt.Fprintf(s.out, "Sender: %s\n", s.cfg.SenderEmail)
	fmt.Fprintf(s.out, "Auth: %s\n", s.auth)
	fmt.Fprintf(s.out, "%s\n\n", rule)
}

func (s *Session) failure(err error) {
	fmt.Fprintln(s.out, "Failed to send email")
	var statusErr *graph.StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(s.out, "Status Code: %d\n", statusErr.StatusCode)
		fmt.Fprintf(s.out, "Response: %s\n", statusErr.Body)
	} else {
		fmt.Fprintf(s.out, "Error sending email: %v\n", sendCause(err))
	}
	fmt.Fprintln(s.out, "\nReport delivery failed")
}

func (s *Session) summary(res *Result) {
	fmt.Fprintln(s.out, "\nReport delivery complete!")
	fmt.Fprintf(s.out, "   PDF: %s\n", filepath.Base(res.PDF))
	fmt.Fprintf(s.out, "   Sent to: %s\n", res.Recipient)
	fmt.Fprintf(s.out, "   Method: %s\n", res.Method)
}

// sendCause strips the mailer's ErrSendFailed from a joined send error.
func sendCause(err error) error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}
	for _, e := range joined.Unwrap() {
		if e != mailer.ErrSendFailed {
			return e
		}
	}
	return err
}
