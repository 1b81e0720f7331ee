package receipt

import (
	"context"
	"log/slog"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/pipz"

	"github.com/ftuk/checkout/internal/domain"
)

// Pipeline stage names for the client side.
const (
	stageRenderEmail    = "render_email"
	stageRemoteDispatch = "remote_dispatch"
	stageComposeMailto  = "compose_mailto"
	pipelineRemoteSend  = "remote_send"
	pipelineDelivery    = "receipt_delivery"
)

// Dispatcher hands a receipt request to the remote dispatch endpoint.
type Dispatcher interface {
	Dispatch(ctx context.Context, req Request) error
}

// delivery carries one receipt request through the client-side pipeline.
type delivery struct {
	order     domain.Order
	when      time.Time
	req       Request
	delivered bool
	mailtoURI string
}

// Requester drives the client side of the receipt pipeline: build the
// email, try the remote dispatcher, and fall back to a local mail-compose
// link when anything in the remote path fails. The raw failure is logged
// but never surfaced to the caller.
type Requester struct {
	logger     *slog.Logger
	dispatcher Dispatcher
	clock      clockz.Clock
	pipeline   *pipz.Fallback[delivery]
}

// NewRequester wires the delivery pipeline. A nil clock falls back to the
// real clock.
func NewRequester(logger *slog.Logger, dispatcher Dispatcher, clock clockz.Clock) *Requester {
	if clock == nil {
		clock = clockz.RealClock
	}
	r := &Requester{
		logger:     logger,
		dispatcher: dispatcher,
		clock:      clock,
	}

	remote := pipz.NewSequence[delivery](pipelineRemoteSend,
		pipz.Apply(stageRenderEmail, r.renderEmail),
		pipz.Apply(stageRemoteDispatch, r.remoteDispatch),
	)
	r.pipeline = pipz.NewFallback[delivery](pipelineDelivery,
		remote,
		pipz.Apply(stageComposeMailto, r.composeFallback),
	)
	return r
}

// Request emails a receipt for the order. An order without an email address
// fails immediately with ErrMissingRecipient and no dispatch is attempted.
// Otherwise the result reports either remote delivery or the mail-compose
// fallback; transport failures do not propagate.
func (r *Requester) Request(ctx context.Context, order domain.Order) (Result, error) {
	if order.Email == "" {
		return Result{}, ErrMissingRecipient
	}
	if order.TransactionID == "" {
		// Receipt requested before completion: no session id exists yet.
		order.TransactionID = domain.NewTransactionID()
	}

	out, perr := r.pipeline.Process(ctx, delivery{order: order, when: r.clock.Now()})
	if perr != nil {
		return Result{}, perr
	}

	return Result{
		Delivered:     out.delivered,
		TransactionID: order.TransactionID,
		MailtoURI:     out.mailtoURI,
	}, nil
}

func (r *Requester) renderEmail(_ context.Context, d delivery) (delivery, error) {
	html, err := renderBody(d.order, d.when)
	if err != nil {
		return d, err
	}
	d.req = Request{
		To:            d.order.Email,
		Subject:       Subject,
		HTML:          html,
		AttachPDF:     true,
		FullName:      d.order.FullName,
		Amount:        d.order.Amount,
		TransactionID: d.order.TransactionID,
	}
	return d, nil
}

func (r *Requester) remoteDispatch(ctx context.Context, d delivery) (delivery, error) {
	if err := r.dispatcher.Dispatch(ctx, d.req); err != nil {
		r.logger.Warn("remote receipt dispatch failed, composing mailto fallback",
			"to", d.order.Email, "error", err)
		return d, err
	}
	d.delivered = true
	return d, nil
}

// composeFallback cannot fail, so the fallback pipeline always yields a way
// for the user to obtain a receipt.
func (r *Requester) composeFallback(_ context.Context, d delivery) (delivery, error) {
	d.mailtoURI = composeMailto(d.order, d.when)
	return d, nil
}
