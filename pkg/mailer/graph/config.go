package graph

// DefaultBaseURL is the Microsoft Graph v1.0 root.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// Config holds Graph sender configuration.
type Config struct {
	SenderEmail   string // Mailbox the message is sent as
	BaseURL       string // Default: DefaultBaseURL
	SkipSentItems bool   // Do not keep a copy in the sender's Sent Items
}
