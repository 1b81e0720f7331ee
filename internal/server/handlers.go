package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ftuk/checkout/internal/domain"
	"github.com/ftuk/checkout/internal/receipt"
)

// ReceiptService is the dispatch contract required by the receipt endpoint.
type ReceiptService interface {
	Send(ctx context.Context, req receipt.Request) error
}

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger   *slog.Logger
	receipts ReceiptService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, receipts ReceiptService) *APIHandlers {
	return &APIHandlers{
		logger:   logger,
		receipts: receipts,
	}
}

// handleSendReceipt accepts POST only. The body must carry to, subject and
// html; anything missing is a structured 400. Internal failures are logged
// and reported as a generic 500, never echoed to the caller.
func (h *APIHandlers) handleSendReceipt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var payload sendReceiptRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if payload.To == "" || payload.Subject == "" || payload.HTML == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	err := h.receipts.Send(r.Context(), receipt.Request{
		To:            payload.To,
		Subject:       payload.Subject,
		HTML:          payload.HTML,
		AttachPDF:     payload.AttachPDF,
		FullName:      payload.FullName,
		Amount:        string(payload.Amount),
		TransactionID: domain.TransactionID(payload.TransactionID),
	})
	if err != nil {
		h.logger.Error("failed to send receipt", "error", err, "to", payload.To)
		writeError(w, http.StatusInternalServerError, "Send failed")
		return
	}

	respondJSON(w, http.StatusOK, okResponse{OK: true})
}

// --- Request & Response DTOs ---

type sendReceiptRequest struct {
	To            string         `json:"to"`
	Subject       string         `json:"subject"`
	HTML          string         `json:"html"`
	AttachPDF     bool           `json:"attachPdf"`
	FullName      string         `json:"fullName"`
	Amount        flexibleAmount `json:"amount"`
	TransactionID string         `json:"transactionId"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// flexibleAmount accepts both string and numeric JSON values; browser
// clients have sent either.
type flexibleAmount string

func (a *flexibleAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = flexibleAmount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or number")
	}
	*a = flexibleAmount(n.String())
	return nil
}

// --- Helpers ---

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(dst)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}
