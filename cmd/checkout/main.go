// Command checkout is a terminal front-end for the payment flow: it walks
// the form, submits the payment and offers to email the receipt through the
// dispatch endpoint.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zoobzio/clockz"

	"github.com/ftuk/checkout/internal/checkout"
	"github.com/ftuk/checkout/internal/config"
	"github.com/ftuk/checkout/internal/logging"
	"github.com/ftuk/checkout/internal/receipt"
)

var fieldPrompts = []struct {
	field checkout.Field
	label string
}{
	{checkout.FieldFullName, "Full name"},
	{checkout.FieldEmail, "Email"},
	{checkout.FieldCardNumber, "Card number"},
	{checkout.FieldExpiry, "Expiry (MM/YY)"},
	{checkout.FieldCVV, "CVV"},
	{checkout.FieldCountry, "Billing country"},
	{checkout.FieldDiscount, "Discount code"},
	{checkout.FieldAmount, "Amount (USD)"},
}

func main() {
	var (
		api      = flag.String("api", "http://localhost:8080/api/send-receipt", "Receipt dispatch endpoint URL")
		delay    = flag.Duration("delay", checkout.DefaultProcessingDelay, "Simulated authorization delay")
		logLevel = flag.String("log-level", "warn", "Log level for dispatch diagnostics")
	)
	flag.Parse()

	logger := logging.NewWithWriter(os.Stderr, config.LoggingConfig{Level: *logLevel, Format: "text"})
	requester := receipt.NewRequester(logger, receipt.NewHTTPDispatcher(*api, nil), clockz.RealClock)

	in := bufio.NewScanner(os.Stdin)
	sess := checkout.NewSession(clockz.RealClock, *delay)

	fmt.Println("FTUK checkout")
	for {
		runForm(in, sess)

		fmt.Println("Processing payment...")
		<-sess.Completed()
		printSummary(sess)

		if askYes(in, "Email receipt?") {
			emailReceipt(requester, sess)
		}
		if !askYes(in, "Make another payment?") {
			return
		}
		if err := sess.Restart(); err != nil {
			logger.Error("restart failed", "error", err)
			return
		}
		fmt.Println()
	}
}

// runForm prompts for every field and resubmits until validation passes.
func runForm(in *bufio.Scanner, sess *checkout.Session) {
	for {
		errs := sess.Errors()
		for _, p := range fieldPrompts {
			if p.field == checkout.FieldCountry {
				fmt.Printf("  Countries: %s\n", strings.Join(checkout.Countries, ", "))
			}
			current := fieldValue(sess.Form(), p.field)
			if msg, ok := errs[p.field]; ok {
				fmt.Printf("  ! %s\n", msg)
			}
			fmt.Printf("%s [%s]: ", p.label, current)
			if !in.Scan() {
				os.Exit(0)
			}
			if raw := strings.TrimSpace(in.Text()); raw != "" {
				sess.SetField(p.field, raw)
			}
		}

		form := sess.Form()
		if form.DiscountApplied() {
			fmt.Printf("Discount code %s applied: 35%% off\n", checkout.DiscountCode)
		}
		fmt.Printf("You will be charged $%s\n", form.Amount)
		if !askYes(in, fmt.Sprintf("Pay $%s?", form.Amount)) {
			continue
		}
		if sess.Submit() {
			return
		}
		fmt.Println("Please fix the highlighted fields:")
	}
}

func printSummary(sess *checkout.Session) {
	form := sess.Form()
	fmt.Println("Payment complete")
	fmt.Printf("  Thank you, %s! Your payment of $%s is confirmed.\n", sess.Order().DisplayName(), form.Amount)
	fmt.Printf("  Transaction ID  %s\n", sess.TransactionID())
	fmt.Printf("  Date            %s\n", sess.CompletedAt().Format("1/2/2006, 3:04:05 PM"))
	fmt.Printf("  Card            %s\n", form.MaskedCard())
}

func emailReceipt(requester *receipt.Requester, sess *checkout.Session) {
	res, err := requester.Request(context.Background(), sess.Order())
	if errors.Is(err, receipt.ErrMissingRecipient) {
		fmt.Println("Please provide an email address to send the receipt to.")
		return
	}
	if err != nil {
		fmt.Println("Could not prepare the receipt; please try again.")
		return
	}
	if res.Delivered {
		fmt.Printf("Receipt emailed to %s\n", sess.Order().Email)
		return
	}
	fmt.Println("Could not reach the receipt service; open this link to send it manually:")
	fmt.Println("  " + res.MailtoURI)
}

func askYes(in *bufio.Scanner, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return answer == "y" || answer == "yes"
}

func fieldValue(form checkout.Form, field checkout.Field) string {
	switch field {
	case checkout.FieldFullName:
		return form.FullName
	case checkout.FieldEmail:
		return form.Email
	case checkout.FieldCardNumber:
		return form.CardNumber
	case checkout.FieldExpiry:
		return form.Expiry
	case checkout.FieldCVV:
		return form.CVV
	case checkout.FieldCountry:
		return form.Country
	case checkout.FieldAmount:
		return form.Amount
	case checkout.FieldDiscount:
		return form.Discount
	default:
		return ""
	}
}
