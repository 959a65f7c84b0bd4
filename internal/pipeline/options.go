package pipeline

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/reportmail/pkg/mailer"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	out           io.Writer
	logger        *slog.Logger
	converter     Converter
	sender        mailer.Sender
	now           func() time.Time
	httpClient    *http.Client
	resendBaseURL *url.URL
	tokenURL      string
	graphBaseURL  string
}

// WithOutput sets where progress and the delivery summary are printed. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithLogger sets the logger passed to every collaborator.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConverter replaces the pandoc converter.
func WithConverter(c Converter) Option {
	return func(o *options) {
		if c != nil {
			o.converter = c
		}
	}
}

// WithSender bypasses the provider factory.
func WithSender(s mailer.Sender) Option {
	return func(o *options) {
		if s != nil {
			o.sender = s
		}
	}
}

// WithClock sets the clock used for the generated-at footer.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithHTTPClient sets the client used for token requests and mail API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithTokenURL overrides the Microsoft identity platform token endpoint.
func WithTokenURL(u string) Option {
	return func(o *options) {
		o.tokenURL = u
	}
}

// WithGraphBaseURL overrides the Microsoft Graph API root.
func WithGraphBaseURL(u string) Option {
	return func(o *options) {
		o.graphBaseURL = u
	}
}

// WithResendBaseURL overrides the Resend API root.
func WithResendBaseURL(u *url.URL) Option {
	return func(o *options) {
		o.resendBaseURL = u
	}
}
