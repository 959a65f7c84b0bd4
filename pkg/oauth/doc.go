// Package oauth obtains OAuth2 access tokens with the client-credentials flow.
//
// The application authenticates as itself (no end user) against the
// Microsoft identity platform and receives a bearer token for Microsoft
// Graph. Token handling is delegated to golang.org/x/oauth2; this package
// adds configuration validation, lazy acquisition and error reporting that
// exposes the provider's error code and description.
//
// # Features
//
//   - Microsoft identity platform endpoint for a fixed tenant
//   - Default Graph scope (https://graph.microsoft.com/.default)
//   - Lazy, cached tokens: nothing is fetched until the first Token call
//   - Functional options for custom HTTP clients and token endpoints
//   - Sentinel errors with "oauth:" prefix for consistent error handling
//
// # Usage
//
//	provider, err := oauth.NewMicrosoftProvider(oauth.MicrosoftConfig{
//		TenantID:     cfg.TenantID,
//		ClientID:     cfg.ClientID,
//		ClientSecret: cfg.ClientSecret,
//	})
//	if err != nil {
//		return err
//	}
//
//	tokens := provider.TokenSource(ctx) // no network call yet
//	tok, err := tokens.Token()
//	if err != nil {
//		var authErr *oauth.AuthError
//		if errors.As(err, &authErr) {
//			fmt.Println(authErr.Code, authErr.Description)
//		}
//		return err
//	}
//
// # Testing
//
// Point the provider at an httptest server:
//
//	provider, _ := oauth.NewMicrosoftProvider(cfg,
//		oauth.WithTokenURL(srv.URL+"/token"),
//		oauth.WithHTTPClient(srv.Client()),
//	)
//
// # Errors
//
// The package defines sentinel errors:
//
//   - ErrMissingTenantID: tenant ID not provided
//   - ErrMissingClientID: client ID not provided
//   - ErrMissingClientSecret: client secret not provided
//   - ErrAuthFailed: the token request failed; the concrete error is *AuthError
package oauth
