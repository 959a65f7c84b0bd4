package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/reportmail/pkg/mailer"
)

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient sets the HTTP client used by the Resend SDK.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(u *url.URL) Option {
	return func(s *Sender) {
		if u != nil {
			s.baseURL = u
		}
	}
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client     *resend.Client
	httpClient *http.Client
	baseURL    *url.URL
	config     Config
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.SenderEmail == "" {
		return nil, ErrMissingSender
	}

	s := &Sender{config: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.httpClient != nil {
		s.client = resend.NewCustomClient(s.httpClient, cfg.APIKey)
	} else {
		s.client = resend.NewClient(cfg.APIKey)
	}
	if s.baseURL != nil {
		base := *s.baseURL
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		s.client.BaseURL = &base
	}
	return s, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}
	if len(email.Attachments) > 0 {
		req.Attachments = convertAttachments(email.Attachments)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		}
	}
	return result
}
