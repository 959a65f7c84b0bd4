package oauth

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

var (
	// ErrMissingTenantID is returned when the directory tenant ID is not provided.
	ErrMissingTenantID = errors.New("oauth: missing tenant ID")

	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrAuthFailed is matched by every token acquisition failure.
	ErrAuthFailed = errors.New("oauth: authentication failed")
)

// AuthError describes a failed token request.
// Code and Description are empty when the authority could not be reached.
type AuthError struct {
	Err         error
	Code        string // OAuth2 "error" field, e.g. "invalid_client"
	Description string // OAuth2 "error_description" field
	StatusCode  int    // HTTP status of the token response, 0 on network failure
}

func (e *AuthError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", ErrAuthFailed, e.Code, e.Description)
	}
	return fmt.Sprintf("%s: %v", ErrAuthFailed, e.Err)
}

// Is makes errors.Is(err, ErrAuthFailed) true for every AuthError.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuthFailed
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func newAuthError(err error) *AuthError {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return &AuthError{Err: err}
	}

	ae := &AuthError{
		Err:         err,
		Code:        re.ErrorCode,
		Description: re.ErrorDescription,
	}
	if re.Response != nil {
		ae.StatusCode = re.Response.StatusCode
	}
	if ae.Code == "" && ae.StatusCode != 0 {
		ae.Code = http.StatusText(ae.StatusCode)
	}
	return ae
}
