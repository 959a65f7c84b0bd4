package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSender is returned when no sender mailbox is configured.
	ErrMissingSender = errors.New("graph: missing sender email")

	// ErrMissingTokenSource is returned when no token source is provided.
	ErrMissingTokenSource = errors.New("graph: missing token source")

	// ErrRequestFailed is returned when the HTTP request could not be completed.
	ErrRequestFailed = errors.New("graph: request failed")

	// ErrUnexpectedStatus is matched by every *StatusError.
	ErrUnexpectedStatus = errors.New("graph: unexpected response status")
)

// StatusError reports a sendMail response other than 202 Accepted.
type StatusError struct {
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status=%d body=%s", ErrUnexpectedStatus, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrUnexpectedStatus) true for every StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
