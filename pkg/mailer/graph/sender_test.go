package graph_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/reportmail/pkg/mailer"
	"github.com/dmitrymomot/reportmail/pkg/mailer/graph"
	"github.com/dmitrymomot/reportmail/pkg/oauth"
)

var _ mailer.Sender = (*graph.Sender)(nil)

// countingSource is a static token source that records how often it is asked.
type countingSource struct {
	err   error
	calls atomic.Int32
}

func (s *countingSource) Token() (*oauth2.Token, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &oauth2.Token{AccessToken: "graph-token", TokenType: "Bearer"}, nil
}

func reportEmail() *mailer.Email {
	return &mailer.Email{
		To:      []string{"client@acme.test"},
		Subject: "Security Assessment Report - acme.corp",
		Text:    "Dear Valued Client,",
		Attachments: []mailer.Attachment{{
			Filename:    "acme-corp.pdf",
			ContentType: mailer.ContentTypePDF,
			Content:     []byte("%PDF-1.4 report"),
		}},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing sender", func(t *testing.T) {
		t.Parallel()
		s, err := graph.New(graph.Config{}, &countingSource{})
		require.ErrorIs(t, err, graph.ErrMissingSender)
		require.Nil(t, s)
	})

	t.Run("missing token source", func(t *testing.T) {
		t.Parallel()
		s, err := graph.New(graph.Config{SenderEmail: "reports@example.com"}, nil)
		require.ErrorIs(t, err, graph.ErrMissingTokenSource)
		require.Nil(t, s)
	})

	t.Run("default endpoint", func(t *testing.T) {
		t.Parallel()
		s, err := graph.New(graph.Config{SenderEmail: "reports@example.com"}, &countingSource{})
		require.NoError(t, err)
		require.Equal(t, "https://graph.microsoft.com/v1.0/users/reports@example.com/sendMail",
			s.Endpoint("reports@example.com"))
	})
}

func TestSender_Send_Accepted(t *testing.T) {
	t.Parallel()

	var (
		gotPath   string
		gotAuth   string
		gotType   string
		gotMethod string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	tokens := &countingSource{}
	s, err := graph.New(graph.Config{SenderEmail: "reports@example.com", BaseURL: srv.URL + "/"}, tokens,
		graph.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	require.NoError(t, s.Send(context.Background(), reportEmail()))

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/users/reports@example.com/sendMail", gotPath)
	require.Equal(t, "Bearer graph-token", gotAuth)
	require.Equal(t, "application/json", gotType)
	require.Equal(t, int32(1), tokens.calls.Load())

	require.Equal(t, "true", gotBody["saveToSentItems"])
	msg := gotBody["message"].(map[string]any)
	require.Equal(t, "Security Assessment Report - acme.corp", msg["subject"])
	require.Equal(t, map[string]any{"contentType": "Text", "content": "Dear Valued Client,"}, msg["body"])

	to := msg["toRecipients"].([]any)
	require.Len(t, to, 1)
	require.Equal(t, "client@acme.test", to[0].(map[string]any)["emailAddress"].(map[string]any)["address"])

	attachments := msg["attachments"].([]any)
	require.Len(t, attachments, 1)
	att := attachments[0].(map[string]any)
	require.Equal(t, "#microsoft.graph.fileAttachment", att["@odata.type"])
	require.Equal(t, "acme-corp.pdf", att["name"])
	require.Equal(t, "application/pdf", att["contentType"])
	require.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 report")), att["contentBytes"])
}

func TestSender_Send_SkipSentItems(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	s, err := graph.New(graph.Config{SenderEmail: "reports@example.com", BaseURL: srv.URL, SkipSentItems: true},
		&countingSource{}, graph.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	require.NoError(t, s.Send(context.Background(), reportEmail()))
	require.Equal(t, "false", gotBody["saveToSentItems"])
}

func TestSender_Send_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "ok is not accepted", status: http.StatusOK, body: ""},
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":{"code":"ErrorAccessDenied","message":"Access is denied."}}`},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":{"code":"ErrorInvalidRecipients"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			s, err := graph.New(graph.Config{SenderEmail: "reports@example.com", BaseURL: srv.URL},
				&countingSource{}, graph.WithHTTPClient(srv.Client()))
			require.NoError(t, err)

			err = s.Send(context.Background(), reportEmail())
			require.ErrorIs(t, err, graph.ErrUnexpectedStatus)

			var statusErr *graph.StatusError
			require.True(t, errors.As(err, &statusErr))
			require.Equal(t, tt.status, statusErr.StatusCode)
			require.Equal(t, tt.body, statusErr.Body)
		})
	}
}

func TestSender_Send_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	s, err := graph.New(graph.Config{SenderEmail: "reports@example.com", BaseURL: base}, &countingSource{})
	require.NoError(t, err)

	err = s.Send(context.Background(), reportEmail())
	require.ErrorIs(t, err, graph.ErrRequestFailed)
}

func TestSender_Send_TokenFailure(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	tokenErr := &oauth.AuthError{Code: "invalid_client", Description: "bad secret"}
	s, err := graph.New(graph.Config{SenderEmail: "reports@example.com", BaseURL: srv.URL},
		&countingSource{err: tokenErr}, graph.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = s.Send(context.Background(), reportEmail())
	require.ErrorIs(t, err, oauth.ErrAuthFailed)
	require.NotErrorIs(t, err, graph.ErrUnexpectedStatus)
	require.Equal(t, int32(0), hits.Load())
}

func TestSender_Send_HTMLBody(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	s, err := graph.New(graph.Config{SenderEmail: "reports@example.com", BaseURL: srv.URL},
		&countingSource{}, graph.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	email := reportEmail()
	email.Text = ""
	email.HTML = "<p>Hello</p>"
	require.NoError(t, s.Send(context.Background(), email))

	msg := gotBody["message"].(map[string]any)
	require.Equal(t, map[string]any{"contentType": "HTML", "content": "<p>Hello</p>"}, msg["body"])
}
