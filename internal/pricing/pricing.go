// Package pricing computes order totals and leveling estimates. Every
// function here is pure: no state, no side effects, safe to call from any
// goroutine.
package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

// Total is an order total in both display currencies. USD is nil when the
// entry has no reference price; callers omit it rather than show $0.00.
type Total struct {
	PKR float64
	USD *float64
}

// ParseQuantity parses user text into a non-negative quantity. Accepts
// plain decimals ("10", "2.5").
func ParseQuantity(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	qty, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrParse, text)
	}
	if qty < 0 {
		return 0, fmt.Errorf("%w: quantity must not be negative", domain.ErrParse)
	}
	return qty, nil
}

// PriceByQuantity prices an entry at a given quantity. Callers must branch
// to the quote-request flow before calling this for quote-sentinel entries;
// a zero unit price here simply multiplies to zero.
func PriceByQuantity(entry domain.CatalogEntry, quantity float64) Total {
	total := Total{PKR: entry.PricePKR * quantity}
	if entry.HasUSD() {
		usd := *entry.PriceUSD * quantity
		total.USD = &usd
	}
	return total
}

// round2 rounds to 2 decimal places for reference-currency display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
