package pricing

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatInt renders an integer with thousands separators, e.g. "1,500,000".
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPKR renders a PKR amount at integer display granularity.
func FormatPKR(v float64) string {
	return printer.Sprintf("%d PKR", int64(v))
}

// FormatUSD renders a USD amount to 2 decimal places.
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
