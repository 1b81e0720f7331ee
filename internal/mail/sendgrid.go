package mail

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendgridHost = "https://api.sendgrid.com"

// SendGridSender delivers messages through the SendGrid v3 mail-send API.
// The API key and sender identity are read once at startup and immutable for
// the process lifetime.
type SendGridSender struct {
	client *sendgrid.Client
	apiKey string
	from   *sgmail.Email
}

// NewSendGridSender constructs the transport with the configured credential
// and sender identity.
func NewSendGridSender(apiKey, senderEmail, senderName string) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		apiKey: apiKey,
		from:   sgmail.NewEmail(senderName, senderEmail),
	}
}

// Send implements the Sender interface.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", msg.To))
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", msg.HTML))

	for _, att := range msg.Attachments {
		a := sgmail.NewAttachment()
		a.SetContent(att.Base64Content)
		a.SetType(att.MIMEType)
		a.SetFilename(att.Filename)
		a.SetDisposition(att.Disposition)
		m.AddAttachment(a)
	}

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// Probe verifies the transport credential by fetching the account profile.
// It backs the service health endpoint.
func (s *SendGridSender) Probe(ctx context.Context) error {
	req := sendgrid.GetRequest(s.apiKey, "/v3/user/profile", sendgridHost)
	req.Method = http.MethodGet

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid probe: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid probe: status %d", resp.StatusCode)
	}
	return nil
}
