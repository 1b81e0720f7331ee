package receipt

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"

	"github.com/ftuk/checkout/internal/domain"
	"github.com/ftuk/checkout/internal/mail"
)

// Pipeline stage names.
const (
	stageAssignTransactionID = "assign_transaction_id"
	stageRenderDocument      = "render_document"
	stageDeliver             = "deliver"
	pipelineDispatch         = "receipt_dispatch"
)

// dispatch carries one receipt request through the server-side pipeline.
type dispatch struct {
	req  Request
	msg  mail.Message
	when time.Time
}

// Service runs the server side of the receipt pipeline behind the dispatch
// endpoint: assign a transaction id, render the document, deliver the email.
type Service struct {
	logger   *slog.Logger
	sender   mail.Sender
	clock    clockz.Clock
	pipeline *pipz.Sequence[dispatch]
}

// NewService constructs the dispatch service around the configured mail
// transport. A nil clock falls back to the real clock.
func NewService(logger *slog.Logger, sender mail.Sender, clock clockz.Clock) *Service {
	if clock == nil {
		clock = clockz.RealClock
	}
	s := &Service{
		logger: logger,
		sender: sender,
		clock:  clock,
	}
	s.pipeline = pipz.NewSequence[dispatch](pipelineDispatch,
		pipz.Apply(stageAssignTransactionID, s.assignTransactionID),
		pipz.Apply(stageRenderDocument, s.renderAttachment),
		pipz.Effect(stageDeliver, s.deliver),
	)
	return s
}

// Send renders and delivers one receipt email. Any stage failure is returned
// to the caller; the handler layer decides what to expose.
func (s *Service) Send(ctx context.Context, req Request) error {
	d := dispatch{
		req:  req,
		when: s.clock.Now(),
		msg: mail.Message{
			To:      req.To,
			Subject: req.Subject,
			HTML:    req.HTML,
		},
	}

	if _, perr := s.pipeline.Process(ctx, d); perr != nil {
		return perr
	}

	s.logger.Info("receipt dispatched", "to", req.To, "attachPdf", req.AttachPDF)
	return nil
}

// assignTransactionID keeps a client-supplied id and mints one only when the
// request carries none, so the id the customer saw is the id the document
// shows.
func (s *Service) assignTransactionID(_ context.Context, d dispatch) (dispatch, error) {
	if d.req.TransactionID == "" {
		d.req.TransactionID = domain.NewTransactionID()
	}
	return d, nil
}

func (s *Service) renderAttachment(_ context.Context, d dispatch) (dispatch, error) {
	if !d.req.AttachPDF {
		return d, nil
	}

	name := d.req.FullName
	if name == "" {
		name = "Customer"
	}
	amount := d.req.Amount
	if amount == "" {
		amount = "0"
	}

	pdf, err := renderDocument(name, amount, d.req.TransactionID, d.when)
	if err != nil {
		return d, err
	}

	d.msg.Attachments = append(d.msg.Attachments, mail.Attachment{
		Filename:      AttachmentFilename,
		MIMEType:      attachmentMIMEType,
		Base64Content: base64.StdEncoding.EncodeToString(pdf),
		Disposition:   "attachment",
	})
	return d, nil
}

func (s *Service) deliver(ctx context.Context, d dispatch) error {
	return s.sender.Send(ctx, d.msg)
}
