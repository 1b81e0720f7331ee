package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ftuk/checkout/internal/receipt"
)

type stubReceiptService struct {
	err  error
	reqs []receipt.Request
}

func (s *stubReceiptService) Send(_ context.Context, req receipt.Request) error {
	s.reqs = append(s.reqs, req)
	return s.err
}

func newTestHandlers(svc ReceiptService) *APIHandlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAPIHandlers(logger, svc)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func TestSendReceiptRejectsNonPost(t *testing.T) {
	svc := &stubReceiptService{}
	handlers := newTestHandlers(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/send-receipt", nil)
	rec := httptest.NewRecorder()
	handlers.handleSendReceipt(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != http.MethodPost {
		t.Errorf("expected Allow header POST, got %q", got)
	}
	if body := decodeBody(t, rec); body["error"] != "Method not allowed" {
		t.Errorf("unexpected error message %q", body["error"])
	}
	if len(svc.reqs) != 0 {
		t.Errorf("expected no dispatch, got %d", len(svc.reqs))
	}
}

func TestSendReceiptRejectsMissingFields(t *testing.T) {
	svc := &stubReceiptService{}
	handlers := newTestHandlers(svc)

	payload := `{"to":"ada@example.com","subject":"FTUK Payment Receipt"}`
	req := httptest.NewRequest(http.MethodPost, "/api/send-receipt", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handlers.handleSendReceipt(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Missing fields" {
		t.Errorf("unexpected error message %q", body["error"])
	}
	if len(svc.reqs) != 0 {
		t.Errorf("expected no dispatch, got %d", len(svc.reqs))
	}
}

func TestSendReceiptRejectsMalformedBody(t *testing.T) {
	handlers := newTestHandlers(&stubReceiptService{})

	req := httptest.NewRequest(http.MethodPost, "/api/send-receipt", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handlers.handleSendReceipt(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Missing fields" {
		t.Errorf("unexpected error message %q", body["error"])
	}
}

func TestSendReceiptDispatches(t *testing.T) {
	svc := &stubReceiptService{}
	handlers := newTestHandlers(svc)

	payload := `{
		"to": "ada@example.com",
		"subject": "FTUK Payment Receipt",
		"html": "<div>receipt</div>",
		"attachPdf": true,
		"fullName": "Ada Lovelace",
		"amount": "975",
		"transactionId": "FTUK-XYZ9876"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/send-receipt", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handlers.handleSendReceipt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["ok"] != true {
		t.Errorf("expected ok response, got %v", body)
	}

	if len(svc.reqs) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(svc.reqs))
	}
	got := svc.reqs[0]
	if got.To != "ada@example.com" || got.Subject != "FTUK Payment Receipt" || got.HTML != "<div>receipt</div>" {
		t.Errorf("unexpected request: %+v", got)
	}
	if !got.AttachPDF || got.FullName != "Ada Lovelace" || got.Amount != "975" || got.TransactionID != "FTUK-XYZ9876" {
		t.Errorf("unexpected request: %+v", got)
	}
}

func TestSendReceiptAcceptsNumericAmount(t *testing.T) {
	svc := &stubReceiptService{}
	handlers := newTestHandlers(svc)

	payload := `{"to":"ada@example.com","subject":"FTUK Payment Receipt","html":"<div>x</div>","amount":975}`
	req := httptest.NewRequest(http.MethodPost, "/api/send-receipt", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handlers.handleSendReceipt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.reqs[0].Amount != "975" {
		t.Errorf("expected numeric amount coerced to %q, got %q", "975", svc.reqs[0].Amount)
	}
}

func TestSendReceiptHidesInternalFailure(t *testing.T) {
	svc := &stubReceiptService{err: errors.New("sendgrid: status 401")}
	handlers := newTestHandlers(svc)

	payload := `{"to":"ada@example.com","subject":"FTUK Payment Receipt","html":"<div>x</div>"}`
	req := httptest.NewRequest(http.MethodPost, "/api/send-receipt", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handlers.handleSendReceipt(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Send failed" {
		t.Errorf("unexpected error message %q", body["error"])
	}
	if strings.Contains(rec.Body.String(), "sendgrid") {
		t.Error("internal failure detail leaked to the client")
	}
}
