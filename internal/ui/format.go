package ui

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// FormatAmount renders a raw figure as a currency string in the given
// ISO code, e.g. FormatAmount(50, "INR") -> "₹50.00". Two-decimal
// rounding happens here and nowhere else; the controller keeps the
// exact value.
func FormatAmount(v float64, code string) string {
	if money.GetCurrency(code) == nil {
		return fmt.Sprintf("%.2f %s", v, code)
	}
	minor := int64(math.Round(v * 100))
	return money.New(minor, code).Display()
}
