package composer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reportmail/pkg/composer"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestCompose_Defaults(t *testing.T) {
	t.Parallel()

	c := composer.New(composer.Template{}, composer.Signature{Name: "Jane Analyst"}, composer.WithClock(fixedClock))
	msg := c.Compose("example.domain.com", "")

	require.Equal(t, "Security Assessment Report - example.domain.com", msg.Subject)

	expected := `Dear Valued Client,

Please find attached the comprehensive security assessment report for example.domain.com.

This report includes:
• Executive summary with overall security rating
• Detailed technical analysis of all security layers
• Specific vulnerabilities and recommendations
• Step-by-step implementation guide
• Verification commands and testing procedures
• Cost analysis and timeline estimates

We recommend reviewing the priority items in Section 5 and implementing the suggested security improvements.

If you have any questions or need assistance with implementation, please do not hesitate to contact us.

Best regards,
Jane Analyst
Netsectap Labs
info@netsectap.com

---
This is an automated report delivery system.
Report generated on: 2026-03-14 09:26:53 UTC`

	require.Equal(t, expected, msg.Body)
}

func TestCompose_TemplateOverrides(t *testing.T) {
	t.Parallel()

	c := composer.New(composer.Template{
		Subject:     "Your {report_type} results for {domain}",
		Greeting:    "Hello team,",
		Intro:       "Attached is the review of {domain}.",
		ActionItems: "Patch <b>TLS</b> first.",
		Closing:     "Thanks & regards.",
	}, composer.Signature{
		Name:    "Jane Analyst",
		Company: "Acme Security",
		Contact: "+1 555 0100",
	}, composer.WithClock(fixedClock))

	msg := c.Compose("acme.corp", "Penetration Test")

	require.Equal(t, "Your Penetration Test results for acme.corp", msg.Subject)
	require.True(t, strings.HasPrefix(msg.Body, "Hello team,\n\nAttached is the review of acme.corp.\n"))
	require.Contains(t, msg.Body, "Patch <b>TLS</b> first.")
	require.Contains(t, msg.Body, "Thanks & regards.")
	require.Contains(t, msg.Body, "Best regards,\nJane Analyst\nAcme Security\n+1 555 0100\n")
	require.NotContains(t, msg.Body, "Netsectap")
}

func TestCompose_ReportTypeLowercasedInDefaultIntro(t *testing.T) {
	t.Parallel()

	c := composer.New(composer.Template{}, composer.Signature{Name: "x"}, composer.WithClock(fixedClock))
	msg := c.Compose("acme.corp", "Web Application Assessment")

	require.Equal(t, "Web Application Assessment Report - acme.corp", msg.Subject)
	require.Contains(t, msg.Body, "comprehensive web application assessment report for acme.corp.")
}

func TestCompose_Deterministic(t *testing.T) {
	t.Parallel()

	tmpl := composer.Template{Subject: "Report {domain}"}
	sig := composer.Signature{Name: "Jane"}

	a := composer.New(tmpl, sig, composer.WithClock(fixedClock)).Compose("acme.corp", "")
	b := composer.New(tmpl, sig, composer.WithClock(fixedClock)).Compose("acme.corp", "")
	require.Equal(t, a, b)

	later := composer.New(tmpl, sig, composer.WithClock(func() time.Time {
		return fixedTime.Add(time.Hour)
	})).Compose("acme.corp", "")
	require.Equal(t, a.Subject, later.Subject)
	require.NotEqual(t, a.Body, later.Body)

	stamp := func(body string) string {
		return body[strings.LastIndex(body, "\n")+1:]
	}
	require.Equal(t,
		strings.TrimSuffix(a.Body, stamp(a.Body)),
		strings.TrimSuffix(later.Body, stamp(later.Body)),
	)
}

func TestCompose_TimestampIsUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+5", 5*60*60)
	c := composer.New(composer.Template{}, composer.Signature{}, composer.WithClock(func() time.Time {
		return time.Date(2026, 1, 1, 3, 0, 0, 0, loc)
	}))

	msg := c.Compose("acme.corp", "")
	require.True(t, strings.HasSuffix(msg.Body, "Report generated on: 2025-12-31 22:00:00 UTC"))
}

func TestCompose_AngleBracketTextKept(t *testing.T) {
	t.Parallel()

	c := composer.New(composer.Template{
		Subject: "Findings for {domain} <CONFIDENTIAL>",
		Closing: "Questions? Write to <soc@acme.test>.",
	}, composer.Signature{Name: "Jane Analyst", Contact: "SOC <soc@acme.test>"}, composer.WithClock(fixedClock))

	msg := c.Compose("acme.corp", "")
	require.Equal(t, "Findings for acme.corp <CONFIDENTIAL>", msg.Subject)
	require.Contains(t, msg.Body, "Questions? Write to <soc@acme.test>.")
	require.Contains(t, msg.Body, "\nSOC <soc@acme.test>\n")
}

func TestCompose_BlankIntroUsesDefault(t *testing.T) {
	t.Parallel()

	c := composer.New(composer.Template{Intro: "   "}, composer.Signature{}, composer.WithClock(fixedClock))

	msg := c.Compose("acme.corp", "")
	require.Contains(t, msg.Body, "Dear Valued Client,\n\nPlease find attached the comprehensive security assessment report for acme.corp.\n")
}
