// Package graph implements mailer.Sender with the Microsoft Graph sendMail API.
//
// Messages are posted to /users/{sender}/sendMail with an OAuth2 bearer
// token taken from an oauth2.TokenSource. The token is requested only when
// a message is about to be sent. Graph answers 202 Accepted with an empty
// body on success; any other status is reported as *StatusError.
//
//	provider, _ := oauth.NewMicrosoftProvider(oauthCfg)
//	sender, err := graph.New(graph.Config{SenderEmail: "reports@example.com"},
//		provider.TokenSource(ctx))
//	if err != nil {
//		return err
//	}
//	m := mailer.New(sender)
package graph
