package domain

import "math/rand/v2"

// TransactionID labels a confirmed payment, e.g. "FTUK-3F8K2QZ". It is a
// display value shown to the customer and embedded in receipts, never a key
// into any store. The checkout session mints exactly one per completed order
// and every consumer (UI, pipeline, document renderer) reads that value.
type TransactionID string

const (
	txIDPrefix   = "FTUK-"
	txIDLength   = 7
	txIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewTransactionID generates a fresh identifier: the fixed prefix followed
// by seven random upper-cased base-36 characters.
func NewTransactionID() TransactionID {
	buf := make([]byte, txIDLength)
	for i := range buf {
		buf[i] = txIDAlphabet[rand.IntN(len(txIDAlphabet))]
	}
	return TransactionID(txIDPrefix + string(buf))
}

func (id TransactionID) String() string {
	return string(id)
}
