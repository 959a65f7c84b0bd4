// Package composer builds the subject and plain-text body of a report email.
//
// The body layout is fixed: greeting, introduction, a list of what the
// report contains, action items, closing, signature and a generated-at
// footer. Each text slot comes from Template when set and from a built-in
// default otherwise. Slots may reference {domain} and {report_type}; no
// other substitution takes place.
//
//	c := composer.New(cfg.EmailTemplate, composer.Signature{
//		Name:    cfg.SenderName,
//		Company: cfg.CompanyName,
//		Contact: cfg.ContactInfo,
//	})
//	msg := c.Compose("example.domain.com", composer.DefaultReportType)
//	fmt.Println(msg.Subject) // Security Assessment Report - example.domain.com
//
// Composition is a pure function of the template, the arguments and the
// clock, which can be fixed with WithClock.
package composer
