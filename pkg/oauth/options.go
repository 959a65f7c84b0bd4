package oauth

import "net/http"

// Option configures an OAuth provider.
type Option func(*options)

type options struct {
	httpClient *http.Client
	tokenURL   string
}

// WithHTTPClient sets a custom HTTP client for token requests.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., proxies).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTokenURL overrides the token endpoint derived from the tenant.
// Use it for national clouds or tests.
func WithTokenURL(url string) Option {
	return func(o *options) {
		o.tokenURL = url
	}
}
