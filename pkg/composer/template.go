package composer

// DefaultReportType labels reports when the caller does not supply a type.
const DefaultReportType = "Security Assessment"

const (
	DefaultSubject     = "{report_type} Report - {domain}"
	DefaultGreeting    = "Dear Valued Client,"
	DefaultActionItems = "We recommend reviewing the priority items in Section 5 and implementing the suggested security improvements."
	DefaultClosing     = "If you have any questions or need assistance with implementation, please do not hesitate to contact us."
	DefaultCompany     = "Netsectap Labs"
	DefaultContact     = "info@netsectap.com"

	// defaultIntro takes the lowercased report type and the domain.
	defaultIntro = "Please find attached the comprehensive %s report for %s."
)

// Template holds the configurable text slots. Empty slots use the defaults.
type Template struct {
	Subject     string `json:"subject"`
	Greeting    string `json:"greeting"`
	Intro       string `json:"intro"`
	ActionItems string `json:"action_items"`
	Closing     string `json:"closing"`
}

// Signature identifies the sender at the bottom of the body.
type Signature struct {
	Name    string
	Company string
	Contact string
}

// ReportContents lists what every report includes, in body order.
var ReportContents = []string{
	"Executive summary with overall security rating",
	"Detailed technical analysis of all security layers",
	"Specific vulnerabilities and recommendations",
	"Step-by-step implementation guide",
	"Verification commands and testing procedures",
	"Cost analysis and timeline estimates",
}

// Message is a composed subject and plain-text body.
type Message struct {
	Subject string
	Body    string
}
