package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ftuk/checkout/internal/domain"
)

// renderDocument produces the single-page PDF receipt: title, underlined
// heading, the four label/value lines and a thank-you line. A4, 50pt
// margins.
func renderDocument(name, amount string, id domain.TransactionID, when time.Time) ([]byte, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(50, 50, 50)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 24, "FTUK", "", 1, "L", false, 0, "")
	doc.Ln(12)

	doc.SetFont("Helvetica", "U", 14)
	doc.CellFormat(0, 18, "Payment Receipt", "", 1, "L", false, 0, "")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	lines := []string{
		"Name: " + name,
		"Amount: $" + amount,
		"Transaction ID: " + id.String(),
		"Date: " + when.Format(timestampLayout),
	}
	for _, line := range lines {
		doc.CellFormat(0, 16, line, "", 1, "L", false, 0, "")
	}
	doc.Ln(16)
	doc.CellFormat(0, 16, "Thank you for your payment.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt document: %w", err)
	}
	return buf.Bytes(), nil
}
