// Package receipt implements the generate-render-dispatch-fallback pipeline
// that turns a confirmed order into an emailed payment receipt.
//
// The package has two halves. Requester is the client side: it builds the
// receipt email for an order, hands it to a remote Dispatcher and, when
// delivery fails for any reason, falls back to a local mail-compose link so
// the customer can always send the receipt manually. Service is the server
// side running behind the dispatch endpoint: it assigns a transaction id
// when the request carries none, renders the PDF document and delivers the
// message through the configured mail transport.
package receipt

import (
	"errors"

	"github.com/ftuk/checkout/internal/domain"
)

const (
	// Subject is the fixed subject line applied to every receipt email.
	Subject = "FTUK Payment Receipt"

	// AttachmentFilename is the fixed name of the attached PDF document.
	AttachmentFilename = "ftuk-receipt.pdf"

	attachmentMIMEType = "application/pdf"

	// timestampLayout renders receipt dates in the en-US locale shape,
	// e.g. "1/2/2006, 3:04:05 PM".
	timestampLayout = "1/2/2006, 3:04:05 PM"
)

// ErrMissingRecipient is returned when a receipt is requested for an order
// without an email address. No dispatch is attempted in that case.
var ErrMissingRecipient = errors.New("receipt: recipient email is required")

// Request is the payload handed to the dispatch endpoint.
type Request struct {
	To            string
	Subject       string
	HTML          string
	AttachPDF     bool
	FullName      string
	Amount        string
	TransactionID domain.TransactionID
}

// Result reports how a receipt reached, or can reach, the customer. When
// Delivered is false the MailtoURI carries the manual-compose fallback.
type Result struct {
	Delivered     bool
	TransactionID domain.TransactionID
	MailtoURI     string
}
