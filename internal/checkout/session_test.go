package checkout

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func fillValid(s *Session) {
	s.SetField(FieldFullName, "Ada Lovelace")
	s.SetField(FieldEmail, "ada@example.com")
	s.SetField(FieldCardNumber, "4242424242424242")
	s.SetField(FieldExpiry, "1226")
	s.SetField(FieldCVV, "123")
	s.SetField(FieldCountry, "United Kingdom")
}

func TestSubmitInvalidStaysInForm(t *testing.T) {
	s := NewSession(clockz.NewFakeClock(), time.Second)

	if s.Submit() {
		t.Fatal("expected submit of an empty form to be rejected")
	}
	if s.State() != StateForm {
		t.Fatalf("expected state form, got %s", s.State())
	}
	if s.Errors().Valid() {
		t.Fatal("expected validation errors to be populated")
	}
}

func TestSubmitValidCompletesAfterDelay(t *testing.T) {
	clock := clockz.NewFakeClock()
	s := NewSession(clock, DefaultProcessingDelay)
	fillValid(s)

	if !s.Submit() {
		t.Fatalf("expected submit to be accepted, errors: %v", s.Errors())
	}
	if s.State() != StateProcessing {
		t.Fatalf("expected state processing, got %s", s.State())
	}
	if s.Submit() {
		t.Fatal("expected resubmit while processing to be rejected")
	}

	clock.Advance(DefaultProcessingDelay)
	clock.BlockUntilReady()
	<-s.Completed()

	if s.State() != StateComplete {
		t.Fatalf("expected state complete, got %s", s.State())
	}
	id := s.TransactionID().String()
	if !strings.HasPrefix(id, "FTUK-") || len(id) != 12 {
		t.Fatalf("unexpected transaction id %q", id)
	}
	if !s.CompletedAt().Equal(clock.Now()) {
		t.Fatalf("expected completion stamped at %v, got %v", clock.Now(), s.CompletedAt())
	}
}

func TestOrderReadsSingleTransactionID(t *testing.T) {
	clock := clockz.NewFakeClock()
	s := NewSession(clock, time.Second)
	fillValid(s)

	if got := s.Order().TransactionID; got != "" {
		t.Fatalf("expected no transaction id before completion, got %q", got)
	}

	s.Submit()
	clock.Advance(time.Second)
	clock.BlockUntilReady()
	<-s.Completed()

	if s.Order().TransactionID != s.TransactionID() {
		t.Fatal("expected order snapshot and session to share one transaction id")
	}
}

func TestRestart(t *testing.T) {
	clock := clockz.NewFakeClock()
	s := NewSession(clock, time.Second)

	if err := s.Restart(); !errors.Is(err, ErrRestartBeforeComplete) {
		t.Fatalf("expected ErrRestartBeforeComplete, got %v", err)
	}

	fillValid(s)
	s.SetField(FieldDiscount, "POWERUP")
	s.Submit()
	clock.Advance(time.Second)
	clock.BlockUntilReady()
	<-s.Completed()

	if err := s.Restart(); err != nil {
		t.Fatalf("restart after completion failed: %v", err)
	}
	if s.State() != StateForm {
		t.Fatalf("expected state form after restart, got %s", s.State())
	}
	form := s.Form()
	if form.FullName != "" || form.Discount != "" || form.Amount != "1499" {
		t.Fatalf("expected defaults after restart, got %+v", form)
	}
	if s.TransactionID() != "" {
		t.Fatal("expected transaction id cleared after restart")
	}
}

func TestSetFieldClearsOwnError(t *testing.T) {
	s := NewSession(clockz.NewFakeClock(), time.Second)
	s.Submit()

	if _, ok := s.Errors()[FieldFullName]; !ok {
		t.Fatal("expected fullName error after invalid submit")
	}

	s.SetField(FieldFullName, "Ada")

	errs := s.Errors()
	if _, ok := errs[FieldFullName]; ok {
		t.Fatal("expected editing fullName to clear its error")
	}
	if _, ok := errs[FieldEmail]; !ok {
		t.Fatal("expected other field errors to remain")
	}
}

func TestEditsIgnoredOutsideForm(t *testing.T) {
	clock := clockz.NewFakeClock()
	s := NewSession(clock, time.Second)
	fillValid(s)
	s.Submit()

	s.SetField(FieldAmount, "1")
	if got := s.Form().Amount; got != "1499" {
		t.Fatalf("expected amount untouched while processing, got %q", got)
	}
}

func TestDiscountAmountCoupling(t *testing.T) {
	s := NewSession(clockz.NewFakeClock(), time.Second)

	s.SetField(FieldDiscount, " powerup ")
	if got := s.Form().Amount; got != "975" {
		t.Fatalf("expected discounted amount 975, got %q", got)
	}

	s.SetField(FieldAmount, "50")
	form := s.Form()
	if form.Amount != "50" || form.Discount != "" {
		t.Fatalf("expected manual amount to clear discount, got %+v", form)
	}
}
