package domain

import (
	"strings"
	"testing"
)

func TestNewTransactionIDFormat(t *testing.T) {
	seen := make(map[TransactionID]struct{})
	for i := 0; i < 100; i++ {
		id := NewTransactionID()
		s := id.String()

		if !strings.HasPrefix(s, "FTUK-") {
			t.Fatalf("missing prefix: %q", s)
		}
		if len(s) != len("FTUK-")+7 {
			t.Fatalf("unexpected length %d: %q", len(s), s)
		}
		for _, r := range s[len("FTUK-"):] {
			if !strings.ContainsRune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", r) {
				t.Fatalf("unexpected character %q in %q", r, s)
			}
		}
		seen[id] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatal("expected distinct ids across draws")
	}
}

func TestOrderDisplayName(t *testing.T) {
	if got := (Order{FullName: "Ada Lovelace"}).DisplayName(); got != "Ada Lovelace" {
		t.Errorf("expected full name, got %q", got)
	}
	if got := (Order{}).DisplayName(); got != "trader" {
		t.Errorf("expected fallback display name, got %q", got)
	}
}
