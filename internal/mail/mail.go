package mail

import "context"

// Message is a single outbound transactional email. The sender identity is
// not part of the message: it is process-wide configuration fixed on the
// transport at construction time.
type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Attachment carries base64-encoded file content.
type Attachment struct {
	Filename      string
	MIMEType      string
	Base64Content string
	Disposition   string
}

// Sender hands a message to the outbound delivery service. Implementations
// must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
