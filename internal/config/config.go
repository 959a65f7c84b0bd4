package config

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/reportmail/pkg/composer"
)

const (
	// DefaultFilename is the configuration file looked up when none is given.
	DefaultFilename = "email-config.json"

	// ExampleFilename is the template shipped next to the binary.
	ExampleFilename = "email-config.example.json"
)

// Mail providers.
const (
	ProviderGraph  = "graph"
	ProviderResend = "resend"
)

// Config is the report mailer configuration. It is read once per run.
type Config struct {
	TenantID         string            `json:"tenant_id"          env:"REPORT_MAILER_TENANT_ID"`
	ClientID         string            `json:"client_id"          env:"REPORT_MAILER_CLIENT_ID"`
	ClientSecret     string            `json:"client_secret"      env:"REPORT_MAILER_CLIENT_SECRET"`
	SenderEmail      string            `json:"sender_email"       env:"REPORT_MAILER_SENDER_EMAIL"`
	SenderName       string            `json:"sender_name"        env:"REPORT_MAILER_SENDER_NAME"`
	DefaultRecipient string            `json:"default_recipient"  env:"REPORT_MAILER_DEFAULT_RECIPIENT"`
	CompanyName      string            `json:"company_name"       env:"REPORT_MAILER_COMPANY_NAME"`
	ContactInfo      string            `json:"contact_info"       env:"REPORT_MAILER_CONTACT_INFO"`
	ReportType       string            `json:"report_type"        env:"REPORT_MAILER_REPORT_TYPE"`
	Provider         string            `json:"provider"           env:"REPORT_MAILER_PROVIDER"`
	ResendAPIKey     string            `json:"resend_api_key"     env:"RESEND_API_KEY"`
	SentryDSN        string            `json:"sentry_dsn"         env:"SENTRY_DSN"`
	EmailTemplate    composer.Template `json:"email_template"`
	SaveToSentItems  bool              `json:"save_to_sent_items" env:"REPORT_MAILER_SAVE_TO_SENT_ITEMS"`
}

// defaults returns the values applied before the file is decoded.
func defaults() Config {
	return Config{
		Provider:        ProviderGraph,
		SaveToSentItems: true,
	}
}

// Signature returns the sender block appended to every message.
func (c *Config) Signature() composer.Signature {
	return composer.Signature{
		Name:    c.SenderName,
		Company: c.CompanyName,
		Contact: c.ContactInfo,
	}
}

// Validate reports every key the selected provider needs but the configuration lacks.
func (c *Config) Validate() error {
	var errs []error
	require := func(key, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("missing %q", key))
		}
	}

	switch c.Provider {
	case ProviderGraph, "":
		require("tenant_id", c.TenantID)
		require("client_id", c.ClientID)
		require("client_secret", c.ClientSecret)
	case ProviderResend:
		require("resend_api_key", c.ResendAPIKey)
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	require("sender_email", c.SenderEmail)

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrConfigInvalid}, errs...)...)
}
