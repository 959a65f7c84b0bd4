package resend

import "errors"

var (
	// ErrMissingAPIKey is returned when no Resend API key is configured.
	ErrMissingAPIKey = errors.New("resend: missing api key")

	// ErrMissingSender is returned when no sender address is configured.
	ErrMissingSender = errors.New("resend: missing sender email")
)
