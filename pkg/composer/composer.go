package composer

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TimestampLayout formats the generated-at footer.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

//go:embed body.tmpl
var bodyTemplate string

var body = template.Must(template.New("body").Option("missingkey=error").Parse(bodyTemplate))

// Composer fills the email template for a report.
type Composer struct {
	now       func() time.Time
	tmpl      Template
	signature Signature
}

// Option configures a Composer.
type Option func(*Composer)

// WithClock replaces time.Now for the generated-at footer.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Composer. Template slots and the signature are used as written.
func New(tmpl Template, sig Signature, opts ...Option) *Composer {
	c := &Composer{
		now:       time.Now,
		tmpl:      tmpl,
		signature: sig,
	}
	if c.signature.Company == "" {
		c.signature.Company = DefaultCompany
	}
	if c.signature.Contact == "" {
		c.signature.Contact = DefaultContact
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// bodyData is the fixed set of slots the body template reads.
type bodyData struct {
	Greeting    string
	Intro       string
	ActionItems string
	Closing     string
	GeneratedAt string
	Signature   Signature
	Contents    []string
}

// Compose returns the subject and body for a report about domain.
// An empty reportType means DefaultReportType.
func (c *Composer) Compose(domain, reportType string) Message {
	if reportType == "" {
		reportType = DefaultReportType
	}
	fill := strings.NewReplacer("{domain}", domain, "{report_type}", reportType).Replace

	intro := c.tmpl.Intro
	if strings.TrimSpace(intro) == "" {
		intro = fmt.Sprintf(defaultIntro, cases.Lower(language.English).String(reportType), domain)
	}

	data := bodyData{
		Greeting:    fill(orDefault(c.tmpl.Greeting, DefaultGreeting)),
		Intro:       fill(intro),
		ActionItems: fill(orDefault(c.tmpl.ActionItems, DefaultActionItems)),
		Closing:     fill(orDefault(c.tmpl.Closing, DefaultClosing)),
		GeneratedAt: c.now().UTC().Format(TimestampLayout),
		Signature:   c.signature,
		Contents:    ReportContents,
	}

	var buf bytes.Buffer
	// bodyData always carries every field the template reads.
	if err := body.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("composer: body template: %v", err))
	}

	return Message{
		Subject: fill(orDefault(c.tmpl.Subject, DefaultSubject)),
		Body:    strings.TrimSpace(buf.String()),
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
