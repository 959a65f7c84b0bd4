package pipeline

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/reportmail/internal/config"
	"github.com/dmitrymomot/reportmail/pkg/mailer"
	"github.com/dmitrymomot/reportmail/pkg/mailer/graph"
	"github.com/dmitrymomot/reportmail/pkg/mailer/resend"
	"github.com/dmitrymomot/reportmail/pkg/oauth"
)

// Delivery method labels used in the banner and the summary.
const (
	graphMethod  = "Microsoft Graph API with OAuth2"
	graphAuth    = "Microsoft Graph API (OAuth2)"
	resendMethod = "Resend API"
	resendAuth   = "Resend API key"
)

// provider is a constructed mail sender and how it authenticates.
type provider struct {
	sender mailer.Sender
	method string
	auth   string
}

// newProvider builds the sender selected by cfg.Provider.
// No network call is made; the Graph token is requested on first send.
func newProvider(ctx context.Context, cfg *config.Config, o options) (provider, error) {
	switch cfg.Provider {
	case config.ProviderGraph, "":
		var oauthOpts []oauth.Option
		if o.httpClient != nil {
			oauthOpts = append(oauthOpts, oauth.WithHTTPClient(o.httpClient))
		}
		if o.tokenURL != "" {
			oauthOpts = append(oauthOpts, oauth.WithTokenURL(o.tokenURL))
		}
		tokens, err := oauth.NewMicrosoftProvider(oauth.MicrosoftConfig{
			TenantID:     cfg.TenantID,
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
		}, oauthOpts...)
		if err != nil {
			return provider{}, err
		}

		var graphOpts []graph.Option
		if o.httpClient != nil {
			graphOpts = append(graphOpts, graph.WithHTTPClient(o.httpClient))
		}
		sender, err := graph.New(graph.Config{
			SenderEmail:   cfg.SenderEmail,
			BaseURL:       o.graphBaseURL,
			SkipSentItems: !cfg.SaveToSentItems,
		}, tokens.TokenSource(ctx), graphOpts...)
		if err != nil {
			return provider{}, err
		}
		return provider{sender: sender, method: graphMethod, auth: graphAuth}, nil

	case config.ProviderResend:
		sender, err := resend.New(resend.Config{
			APIKey:      cfg.ResendAPIKey,
			SenderEmail: cfg.SenderEmail,
			SenderName:  cfg.SenderName,
		}, resend.WithHTTPClient(o.httpClient), resend.WithBaseURL(o.resendBaseURL))
		if err != nil {
			return provider{}, err
		}
		return provider{sender: sender, method: resendMethod, auth: resendAuth}, nil

	default:
		return provider{}, fmt.Errorf("%w: unknown provider %q", config.ErrConfigInvalid, cfg.Provider)
	}
}
