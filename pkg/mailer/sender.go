package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
type Sender interface {
	// Send delivers a validated email.
	// The Email has at least one recipient, a subject and a body.
	Send(ctx context.Context, email *Email) error
}
