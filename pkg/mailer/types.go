package mailer

import "fmt"

// ContentTypePDF is the MIME type of report attachments.
const ContentTypePDF = "application/pdf"

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Subject     string       // Email subject
	Text        string       // Plain text body
	HTML        string       // Optional HTML body; providers without HTML support ignore it
	From        string       // Override default sender (if provider allows)
	To          []string     // Recipients (at least one required)
	Attachments []Attachment // File attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content; providers encode as needed
}
