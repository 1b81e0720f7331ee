package receipt

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ftuk/checkout/internal/domain"
)

// composeMailto builds the manual mail-compose link handed to the user agent
// when remote dispatch fails. Recipient, subject and body are all
// percent-encoded.
func composeMailto(order domain.Order, when time.Time) string {
	body := fmt.Sprintf("Thank you %s for your payment of $%s.\nTransaction ID: %s\nDate: %s",
		order.DisplayName(), order.Amount, order.TransactionID, when.Format(timestampLayout))

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		percentEncode(order.Email), percentEncode(Subject), percentEncode(body))
}

// percentEncode escapes a mailto component. Unlike query encoding, spaces
// must appear as %20 rather than '+'.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
