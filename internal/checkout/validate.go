package checkout

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	expiryRegex = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

// ValidationErrors maps an offending field to its human-readable message.
// An empty map means the form passed validation.
type ValidationErrors map[Field]string

// Valid reports whether a submit attempt may proceed.
func (e ValidationErrors) Valid() bool {
	return len(e) == 0
}

// Validate checks the complete form and returns every failing field. All
// rules run on every call; there is no short-circuit between fields.
func Validate(f Form) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(f.FullName) == "" {
		errs[FieldFullName] = "Full name is required"
	}
	if !emailRegex.MatchString(f.Email) {
		errs[FieldEmail] = "Enter a valid email"
	}
	if len(strings.ReplaceAll(f.CardNumber, " ", "")) < 13 {
		errs[FieldCardNumber] = "Enter a valid card number"
	}
	if !expiryRegex.MatchString(f.Expiry) {
		errs[FieldExpiry] = "Expiry must be MM/YY"
	}
	if len(f.CVV) < 3 {
		errs[FieldCVV] = "CVV required"
	}
	if f.Country == "" {
		errs[FieldCountry] = "Country required"
	}
	if amount, err := strconv.Atoi(f.Amount); err != nil || amount <= 0 {
		errs[FieldAmount] = "Enter a valid amount"
	}

	return errs
}
