package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/reportmail/pkg/mailer"
)

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 64 << 10

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient sets the client used for sendMail requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// Sender implements mailer.Sender using Microsoft Graph.
type Sender struct {
	tokens     oauth2.TokenSource
	httpClient *http.Client
	config     Config
}

// New creates a Graph sender. Tokens are requested from tokens on each Send;
// pass a caching source such as oauth.MicrosoftProvider.TokenSource.
func New(cfg Config, tokens oauth2.TokenSource, opts ...Option) (*Sender, error) {
	if cfg.SenderEmail == "" {
		return nil, ErrMissingSender
	}
	if tokens == nil {
		return nil, ErrMissingTokenSource
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	s := &Sender{
		tokens:     tokens,
		httpClient: http.DefaultClient,
		config:     cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Endpoint returns the sendMail URL for the sender mailbox.
func (s *Sender) Endpoint(sender string) string {
	return fmt.Sprintf("%s/users/%s/sendMail", s.config.BaseURL, url.PathEscape(sender))
}

// Send implements mailer.Sender.
// Token errors are returned unchanged so callers can tell them apart from delivery failures.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = s.config.SenderEmail
	}

	payload, err := json.Marshal(newSendMailRequest(email, !s.config.SkipSentItems))
	if err != nil {
		return fmt.Errorf("graph: encode message: %w", err)
	}

	tok, err := s.tokens.Token()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint(from), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	tok.SetAuthHeader(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
