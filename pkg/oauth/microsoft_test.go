package oauth_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reportmail/pkg/oauth"
)

func validConfig() oauth.MicrosoftConfig {
	return oauth.MicrosoftConfig{
		TenantID:     "tenant-123",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

func tokenServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func writeToken(w http.ResponseWriter, token string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   3599,
	})
}

// recordingTransport answers every request with a token and remembers the URL.
type recordingTransport struct {
	url string
}

func (rt *recordingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	rt.url = r.URL.String()
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"access_token":"t","token_type":"Bearer","expires_in":3599}`)),
		Request:    r,
	}, nil
}

func TestNewMicrosoftProvider(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		rt := &recordingTransport{}
		p, err := oauth.NewMicrosoftProvider(validConfig(), oauth.WithHTTPClient(&http.Client{Transport: rt}))
		require.NoError(t, err)

		_, err = p.TokenSource(context.Background()).Token()
		require.NoError(t, err)
		require.Equal(t, "https://login.microsoftonline.com/tenant-123/oauth2/v2.0/token", rt.url)
	})

	t.Run("missing tenant ID", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.TenantID = ""
		p, err := oauth.NewMicrosoftProvider(cfg)
		require.ErrorIs(t, err, oauth.ErrMissingTenantID)
		require.Nil(t, p)
	})

	t.Run("missing client ID", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ClientID = ""
		p, err := oauth.NewMicrosoftProvider(cfg)
		require.ErrorIs(t, err, oauth.ErrMissingClientID)
		require.Nil(t, p)
	})

	t.Run("missing client secret", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.ClientSecret = ""
		p, err := oauth.NewMicrosoftProvider(cfg)
		require.ErrorIs(t, err, oauth.ErrMissingClientSecret)
		require.Nil(t, p)
	})

	t.Run("custom token URL", func(t *testing.T) {
		t.Parallel()
		rt := &recordingTransport{}
		p, err := oauth.NewMicrosoftProvider(validConfig(),
			oauth.WithTokenURL("https://login.example.test/token"),
			oauth.WithHTTPClient(&http.Client{Transport: rt}),
		)
		require.NoError(t, err)

		_, err = p.TokenSource(context.Background()).Token()
		require.NoError(t, err)
		require.Equal(t, "https://login.example.test/token", rt.url)
	})
}

func TestMicrosoftDefaultScopes(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"https://graph.microsoft.com/.default"}, oauth.MicrosoftDefaultScopes())
}

func TestMicrosoftProvider_TokenRequest(t *testing.T) {
	t.Parallel()

	var form map[string]string
	srv, calls := tokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		form = map[string]string{
			"grant_type":    r.PostForm.Get("grant_type"),
			"scope":         r.PostForm.Get("scope"),
			"client_id":     r.PostForm.Get("client_id"),
			"client_secret": r.PostForm.Get("client_secret"),
		}
		writeToken(w, "graph-token")
	})

	p, err := oauth.NewMicrosoftProvider(validConfig(),
		oauth.WithTokenURL(srv.URL+"/token"),
		oauth.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	tok, err := p.TokenSource(context.Background()).Token()
	require.NoError(t, err)
	require.Equal(t, "graph-token", tok.AccessToken)
	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, map[string]string{
		"grant_type":    "client_credentials",
		"scope":         "https://graph.microsoft.com/.default",
		"client_id":     "client-id",
		"client_secret": "client-secret",
	}, form)
}

func TestMicrosoftProvider_TokenSource(t *testing.T) {
	t.Parallel()

	t.Run("lazy and cached", func(t *testing.T) {
		t.Parallel()

		srv, calls := tokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeToken(w, "cached-token")
		})

		p, err := oauth.NewMicrosoftProvider(validConfig(),
			oauth.WithTokenURL(srv.URL),
			oauth.WithHTTPClient(srv.Client()),
		)
		require.NoError(t, err)

		ts := p.TokenSource(context.Background())
		require.Equal(t, int32(0), calls.Load())

		for range 3 {
			tok, err := ts.Token()
			require.NoError(t, err)
			require.Equal(t, "cached-token", tok.AccessToken)
		}
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("rejected credentials", func(t *testing.T) {
		t.Parallel()

		srv, calls := tokenServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":             "invalid_client",
				"error_description": "AADSTS7000215: Invalid client secret provided.",
			})
		})

		p, err := oauth.NewMicrosoftProvider(validConfig(),
			oauth.WithTokenURL(srv.URL),
			oauth.WithHTTPClient(srv.Client()),
		)
		require.NoError(t, err)

		tok, err := p.TokenSource(context.Background()).Token()
		require.Nil(t, tok)
		require.ErrorIs(t, err, oauth.ErrAuthFailed)

		var authErr *oauth.AuthError
		require.True(t, errors.As(err, &authErr))
		require.Equal(t, "invalid_client", authErr.Code)
		require.Equal(t, "AADSTS7000215: Invalid client secret provided.", authErr.Description)
		require.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		require.Contains(t, err.Error(), "invalid_client")
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("unreachable authority", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		p, err := oauth.NewMicrosoftProvider(validConfig(), oauth.WithTokenURL(url))
		require.NoError(t, err)

		_, err = p.TokenSource(context.Background()).Token()
		require.ErrorIs(t, err, oauth.ErrAuthFailed)

		var authErr *oauth.AuthError
		require.True(t, errors.As(err, &authErr))
		require.Empty(t, authErr.Code)
		require.Zero(t, authErr.StatusCode)
		require.Error(t, authErr.Unwrap())
	})
}
