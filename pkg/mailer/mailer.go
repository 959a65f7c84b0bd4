package mailer

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/reportmail/pkg/logger"
)

// Mailer validates messages and hands them to a Sender.
type Mailer struct {
	sender Sender
	logger *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for delivery events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer with the given sender.
func New(sender Sender, opts ...Option) *Mailer {
	m := &Mailer{sender: sender, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates the email and delivers it through the sender.
// Sender failures are joined with ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if email == nil || len(email.To) == 0 || strings.TrimSpace(email.To[0]) == "" {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.Text == "" && email.HTML == "" {
		return ErrNoContent
	}

	m.logger.InfoContext(ctx, "sending email",
		slog.String("to", strings.Join(email.To, ",")),
		slog.Int("attachments", len(email.Attachments)),
	)

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	m.logger.InfoContext(ctx, "email sent", slog.String("to", strings.Join(email.To, ",")))
	return nil
}
