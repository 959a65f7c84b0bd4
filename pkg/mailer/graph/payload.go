package graph

import (
	"encoding/base64"
	"strconv"

	"github.com/dmitrymomot/reportmail/pkg/mailer"
)

const fileAttachmentType = "#microsoft.graph.fileAttachment"

type sendMailRequest struct {
	Message         message `json:"message"`
	SaveToSentItems string  `json:"saveToSentItems"`
}

type message struct {
	Subject      string           `json:"subject"`
	Body         itemBody         `json:"body"`
	ToRecipients []recipient      `json:"toRecipients"`
	Attachments  []fileAttachment `json:"attachments,omitempty"`
}

type itemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type fileAttachment struct {
	ODataType    string `json:"@odata.type"`
	Name         string `json:"name"`
	ContentType  string `json:"contentType"`
	ContentBytes string `json:"contentBytes"`
}

// newSendMailRequest maps an email onto the Graph payload.
// Plain text wins over HTML when both are set.
func newSendMailRequest(email *mailer.Email, saveToSentItems bool) sendMailRequest {
	body := itemBody{ContentType: "Text", Content: email.Text}
	if email.Text == "" {
		body = itemBody{ContentType: "HTML", Content: email.HTML}
	}

	to := make([]recipient, 0, len(email.To))
	for _, addr := range email.To {
		to = append(to, recipient{EmailAddress: emailAddress{Address: addr}})
	}

	attachments := make([]fileAttachment, 0, len(email.Attachments))
	for _, a := range email.Attachments {
		attachments = append(attachments, fileAttachment{
			ODataType:    fileAttachmentType,
			Name:         a.Filename,
			ContentType:  a.ContentType,
			ContentBytes: base64.StdEncoding.EncodeToString(a.Content),
		})
	}

	return sendMailRequest{
		Message: message{
			Subject:      email.Subject,
			Body:         body,
			ToRecipients: to,
			Attachments:  attachments,
		},
		SaveToSentItems: strconv.FormatBool(saveToSentItems),
	}
}
