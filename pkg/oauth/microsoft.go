package oauth

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/microsoft"
)

// GraphDefaultScope requests every application permission granted to the client for Microsoft Graph.
const GraphDefaultScope = "https://graph.microsoft.com/.default"

// MicrosoftConfig holds client-credentials configuration for one tenant.
type MicrosoftConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// MicrosoftDefaultScopes returns the default scopes for Microsoft Graph.
func MicrosoftDefaultScopes() []string {
	return []string{GraphDefaultScope}
}

// MicrosoftProvider acquires app-only tokens from the Microsoft identity platform.
type MicrosoftProvider struct {
	config     *clientcredentials.Config
	httpClient *http.Client
}

// NewMicrosoftProvider creates a client-credentials provider.
// Returns an error if TenantID, ClientID or ClientSecret is empty.
func NewMicrosoftProvider(cfg MicrosoftConfig, opts ...Option) (*MicrosoftProvider, error) {
	if cfg.TenantID == "" {
		return nil, ErrMissingTenantID
	}
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = MicrosoftDefaultScopes()
	}

	tokenURL := o.tokenURL
	if tokenURL == "" {
		tokenURL = microsoft.AzureADEndpoint(cfg.TenantID).TokenURL
	}

	return &MicrosoftProvider{
		config: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: o.httpClient,
	}, nil
}

// TokenSource returns a source that fetches a token on first use and reuses it until expiry.
// ctx is used for every token request the source makes.
// Failures are reported as *AuthError.
func (p *MicrosoftProvider) TokenSource(ctx context.Context) oauth2.TokenSource {
	ctx = p.contextWithHTTPClient(ctx)
	return &tokenSource{src: oauth2.ReuseTokenSource(nil, p.config.TokenSource(ctx))}
}

func (p *MicrosoftProvider) contextWithHTTPClient(ctx context.Context) context.Context {
	if p.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}
	return ctx
}

// tokenSource converts token errors into *AuthError.
type tokenSource struct {
	src oauth2.TokenSource
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, newAuthError(err)
	}
	return tok, nil
}
