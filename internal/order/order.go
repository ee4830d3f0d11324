// Package order turns a consumed selection session into an immutable
// order snapshot ready to attach to a ticket.
package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/pricing"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

// FinalizeSingle builds an order from a one-item session. The session
// must hold a chosen entry; quote-sentinel entries produce a single
// unpriced line for staff to quote manually.
func FinalizeSingle(customer domain.Actor, kind domain.OrderKind, choice *selection.SingleChoice) (*domain.Order, error) {
	entry, ok := choice.Chosen()
	if !ok {
		return nil, fmt.Errorf("%w: no item chosen", domain.ErrEmptySelection)
	}

	line := domain.OrderLine{Name: entry.Name}
	switch {
	case kind == domain.OrderBossing && entry.PricePKR == 0:
		line.Detail = "quote on request"
		line.QuoteRequired = true
	case choice.Estimate() != nil:
		est := choice.Estimate()
		line.Detail = fmt.Sprintf("%s -> %s XP (level %d -> %d)",
			pricing.FormatInt(est.StartXP), pricing.FormatInt(est.EndXP),
			est.StartLevel, est.EndLevel)
		line.TotalPKR = est.TotalPKR
		line.TotalUSD = est.TotalUSD
	default:
		quantity, ok := choice.Quantity()
		if !ok {
			return nil, fmt.Errorf("%w: no quantity given", domain.ErrEmptySelection)
		}
		total := pricing.PriceByQuantity(entry, quantity)
		line.Detail = formatQuantity(quantity)
		line.TotalPKR = total.PKR
		line.TotalUSD = total.USD
	}

	return build(customer, kind, "", []domain.OrderLine{line}), nil
}

// FinalizeMulti builds an order from a paginated multi-choice session,
// one line per selected name. Names the catalog no longer knows are
// skipped; an empty result is ErrEmptySelection.
func FinalizeMulti(customer domain.Actor, kind domain.OrderKind, rsn string, choice *selection.MultiChoice, lookup selection.EntryLookup) (*domain.Order, error) {
	var lines []domain.OrderLine
	for _, name := range choice.Selected() {
		entry, err := lookup.LookupAny(name)
		if err != nil {
			continue
		}
		lines = append(lines, domain.OrderLine{
			Name:     entry.Name,
			Detail:   "x1",
			TotalPKR: entry.PricePKR,
			TotalUSD: entry.PriceUSD,
		})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: select at least one item", domain.ErrEmptySelection)
	}
	return build(customer, kind, rsn, lines), nil
}

func build(customer domain.Actor, kind domain.OrderKind, rsn string, lines []domain.OrderLine) *domain.Order {
	var totalPKR, usd float64
	usdComplete := true
	for _, line := range lines {
		totalPKR += line.TotalPKR
		if line.QuoteRequired {
			usdComplete = false
			continue
		}
		if line.TotalUSD != nil {
			usd += *line.TotalUSD
		} else {
			usdComplete = false
		}
	}
	order := &domain.Order{
		ID:        uuid.NewString(),
		Kind:      kind,
		Customer:  customer,
		RSN:       rsn,
		Lines:     lines,
		TotalPKR:  totalPKR,
		CreatedAt: time.Now().UTC(),
	}
	if usdComplete {
		order.TotalUSD = &usd
	}
	return order
}

func formatQuantity(quantity float64) string {
	if quantity == float64(int64(quantity)) {
		return fmt.Sprintf("x%d", int64(quantity))
	}
	return fmt.Sprintf("x%g", quantity)
}
