package domain

import "strings"

// Order is the confirmed-order view handed to the receipt pipeline. It is
// assembled fresh from the checkout session on every receipt request and is
// never persisted.
type Order struct {
	FullName      string
	Email         string
	Amount        string
	TransactionID TransactionID
}

// DisplayName returns the customer name used in receipt copy, falling back
// to the generic salutation when the form never captured one.
func (o Order) DisplayName() string {
	if strings.TrimSpace(o.FullName) == "" {
		return "trader"
	}
	return o.FullName
}
