package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultDispatchTimeout = 15 * time.Second

// HTTPDispatcher posts receipt requests to the dispatch endpoint as JSON.
type HTTPDispatcher struct {
	endpoint string
	client   *http.Client
}

// NewHTTPDispatcher targets the given endpoint URL. A nil client gets a
// default with a request timeout.
func NewHTTPDispatcher(endpoint string, client *http.Client) *HTTPDispatcher {
	if client == nil {
		client = &http.Client{Timeout: defaultDispatchTimeout}
	}
	return &HTTPDispatcher{
		endpoint: endpoint,
		client:   client,
	}
}

type dispatchPayload struct {
	To            string `json:"to"`
	Subject       string `json:"subject"`
	HTML          string `json:"html"`
	AttachPDF     bool   `json:"attachPdf"`
	FullName      string `json:"fullName,omitempty"`
	Amount        string `json:"amount,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

// Dispatch implements the Dispatcher interface.
func (d *HTTPDispatcher) Dispatch(ctx context.Context, req Request) error {
	body, err := json.Marshal(dispatchPayload{
		To:            req.To,
		Subject:       req.Subject,
		HTML:          req.HTML,
		AttachPDF:     req.AttachPDF,
		FullName:      req.FullName,
		Amount:        req.Amount,
		TransactionID: req.TransactionID.String(),
	})
	if err != nil {
		return fmt.Errorf("encode dispatch payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build dispatch request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("dispatch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dispatch endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
