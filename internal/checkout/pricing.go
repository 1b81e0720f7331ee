package checkout

import (
	"math"
	"strconv"
	"strings"
)

// Pricing is fixed: a single base price in whole currency units and one
// recognized discount code worth 35% off.
const (
	BasePrice    = 1499
	DiscountCode = "POWERUP"

	discountMultiplier = 0.65
)

// Price maps a discount code to the displayed amount string. The form's
// amount field is the single source of truth for price; the confirmation
// view, the email body and the receipt document all read that field rather
// than recomputing.
func Price(code string) string {
	if discounted(code) {
		return strconv.Itoa(int(math.Round(BasePrice * discountMultiplier)))
	}
	return strconv.Itoa(BasePrice)
}

func discounted(code string) bool {
	return strings.ToUpper(strings.TrimSpace(code)) == DiscountCode
}
