package checkout

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D+`)

// Field names one of the checkout form inputs.
type Field string

const (
	FieldFullName   Field = "fullName"
	FieldEmail      Field = "email"
	FieldCardNumber Field = "cardNumber"
	FieldExpiry     Field = "expiry"
	FieldCVV        Field = "cvv"
	FieldCountry    Field = "country"
	FieldAmount     Field = "amount"
	FieldDiscount   Field = "discount"
)

// Countries offered by the billing-country selector.
var Countries = []string{
	"United Kingdom",
	"United States",
	"India",
	"Germany",
	"France",
}

// Form holds the canonical value of every checkout field. Values are only
// ever written through Normalize, which keeps the per-field invariants
// (digit grouping, length caps, the amount/discount coupling).
type Form struct {
	FullName   string
	Email      string
	CardNumber string
	Expiry     string
	CVV        string
	Country    string
	Amount     string
	Discount   string
}

// NewForm returns the default form state with the base price pre-filled.
func NewForm() Form {
	return Form{Amount: Price("")}
}

// Normalize reshapes a single raw field edit into the canonical form state.
// It is a pure function: the previous form is not mutated and the same
// inputs always produce the same output.
func Normalize(prev Form, field Field, raw string) Form {
	next := prev
	switch field {
	case FieldFullName:
		next.FullName = raw
	case FieldEmail:
		next.Email = raw
	case FieldCardNumber:
		next.CardNumber = normalizeCardNumber(raw)
	case FieldExpiry:
		next.Expiry = normalizeExpiry(raw)
	case FieldCVV:
		next.CVV = digitsOnly(raw, 4)
	case FieldCountry:
		next.Country = raw
	case FieldAmount:
		// A manual amount override discards any applied discount code.
		next.Amount = digitsOnly(raw, 7)
		next.Discount = ""
	case FieldDiscount:
		next.Discount = raw
		next.Amount = Price(raw)
	}
	return next
}

// normalizeCardNumber strips non-digits, caps the number at 19 digits and
// regroups it into space-separated blocks of four.
func normalizeCardNumber(raw string) string {
	digits := digitsOnly(raw, 19)
	groups := make([]string, 0, 5)
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}
	return strings.Join(groups, " ")
}

// normalizeExpiry strips non-digits, caps at four digits and inserts the
// MM/YY slash once more than two digits are present.
func normalizeExpiry(raw string) string {
	digits := digitsOnly(raw, 4)
	if len(digits) > 2 {
		return digits[:2] + "/" + digits[2:]
	}
	return digits
}

func digitsOnly(raw string, max int) string {
	digits := nonDigitRegex.ReplaceAllString(raw, "")
	if len(digits) > max {
		digits = digits[:max]
	}
	return digits
}

// DiscountApplied reports whether the recognized discount code is currently
// entered, using the same case-insensitive trimmed comparison as pricing.
func (f Form) DiscountApplied() bool {
	return discounted(f.Discount)
}

// MaskedCard returns the confirmation-view rendering of the card number,
// keeping only the last four digits.
func (f Form) MaskedCard() string {
	digits := nonDigitRegex.ReplaceAllString(f.CardNumber, "")
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	if digits == "" {
		return ""
	}
	return "•••• " + digits
}
