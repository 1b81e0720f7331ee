package receipt

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ftuk/checkout/internal/domain"
)

var bodyTemplate = template.Must(template.New("receipt").Parse(`<div style="font-family: Inter, Arial, sans-serif; color:#0b131a;">
  <h2>FTUK &mdash; Payment Receipt</h2>
  <p>Thank you {{.Name}} for your payment.</p>
  <ul>
    <li>Amount: ${{.Amount}}</li>
    <li>Transaction ID: {{.TransactionID}}</li>
    <li>Date: {{.Date}}</li>
  </ul>
</div>`))

// renderBody produces the HTML email body for an order.
func renderBody(order domain.Order, when time.Time) (string, error) {
	var buf strings.Builder
	err := bodyTemplate.Execute(&buf, struct {
		Name          string
		Amount        string
		TransactionID domain.TransactionID
		Date          string
	}{
		Name:          order.DisplayName(),
		Amount:        order.Amount,
		TransactionID: order.TransactionID,
		Date:          when.Format(timestampLayout),
	})
	if err != nil {
		return "", fmt.Errorf("render receipt body: %w", err)
	}
	return buf.String(), nil
}
