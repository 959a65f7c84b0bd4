package pipeline

import (
	"errors"

	"github.com/dmitrymomot/reportmail/internal/config"
	"github.com/dmitrymomot/reportmail/pkg/converter"
	"github.com/dmitrymomot/reportmail/pkg/mailer"
	"github.com/dmitrymomot/reportmail/pkg/oauth"
)

// ErrNoRecipient indicates neither the request nor the configuration names a recipient.
var ErrNoRecipient = errors.New("pipeline: no recipient given and no default_recipient configured")

// Hint returns a remediation message for a failed delivery, or "" if none applies.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, config.ErrConfigMissing):
		return config.MissingHint
	case errors.Is(err, config.ErrConfigMalformed), errors.Is(err, config.ErrConfigInvalid):
		return "Compare " + config.DefaultFilename + " with " + config.ExampleFilename
	case errors.Is(err, oauth.ErrAuthFailed):
		return "Check tenant_id, client_id and client_secret, and that the app registration has the Mail.Send application permission"
	case errors.Is(err, ErrNoRecipient):
		return "Pass a recipient email or set default_recipient in " + config.DefaultFilename
	case errors.Is(err, mailer.ErrAttachmentMissing):
		return "Check that the PDF was written and is readable"
	default:
		return converter.Hint(err)
	}
}
