// Package mailer provides a provider-neutral email message and delivery interface.
//
// Delivery is split between the Mailer, which validates a message, and a
// Sender, which speaks a particular provider's API. Two providers ship with
// the package:
//
//   - graph: Microsoft Graph sendMail with an OAuth2 bearer token
//   - resend: the Resend HTTP API
//
// # Usage
//
//	sender, err := graph.New(graph.Config{SenderEmail: "reports@example.com"}, tokens)
//	if err != nil {
//		return err
//	}
//	m := mailer.New(sender)
//
//	pdf, err := mailer.AttachFile("acme-corp.pdf", mailer.ContentTypePDF)
//	if err != nil {
//		return err
//	}
//
//	err = m.Send(ctx, &mailer.Email{
//		To:          []string{"client@acme.test"},
//		Subject:     "Security Assessment Report - acme.corp",
//		Text:        body,
//		Attachments: []mailer.Attachment{pdf},
//	})
//
// # Custom Providers
//
// Implement Sender to add another provider:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) error {
//		// call the provider API
//		return nil
//	}
//
// # Errors
//
//   - ErrNoRecipient: no recipient specified
//   - ErrNoSubject: no subject provided
//   - ErrNoContent: neither text nor HTML content provided
//   - ErrAttachmentMissing: an attachment file could not be read
//   - ErrSendFailed: the provider did not accept the message
package mailer
