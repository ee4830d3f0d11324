// Package selection holds per-user, per-flow choice state between the
// first catalog interaction and order assembly. Sessions are short-lived
// and consumed exactly once.
package selection

import (
	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/pricing"
)

// SingleChoice tracks the latest pick in a one-item flow. A new choice
// overwrites the previous one; there is no accumulation.
type SingleChoice struct {
	category string
	entry    domain.CatalogEntry
	chosen   bool

	quantity    float64
	hasQuantity bool
	estimate    *pricing.Estimate
}

// Choose records the picked entry, replacing any earlier pick and
// clearing any quantity or estimate captured for it.
func (s *SingleChoice) Choose(category string, entry domain.CatalogEntry) {
	s.category = category
	s.entry = entry
	s.chosen = true
	s.quantity = 0
	s.hasQuantity = false
	s.estimate = nil
}

// Chosen returns the current pick, if any.
func (s *SingleChoice) Chosen() (domain.CatalogEntry, bool) {
	return s.entry, s.chosen
}

// Category returns the category label of the current pick.
func (s *SingleChoice) Category() string {
	return s.category
}

// SetQuantity attaches a parsed quantity to the current pick.
func (s *SingleChoice) SetQuantity(quantity float64) {
	s.quantity = quantity
	s.hasQuantity = true
}

// Quantity returns the attached quantity, if one was set.
func (s *SingleChoice) Quantity() (float64, bool) {
	return s.quantity, s.hasQuantity
}

// SetEstimate attaches an XP-range estimate to the current pick.
func (s *SingleChoice) SetEstimate(estimate *pricing.Estimate) {
	s.estimate = estimate
}

// Estimate returns the attached estimate, or nil.
func (s *SingleChoice) Estimate() *pricing.Estimate {
	return s.estimate
}

// EntryLookup resolves a catalog name to its priced entry.
type EntryLookup interface {
	LookupAny(name string) (domain.CatalogEntry, error)
}

// MultiChoice accumulates picks across paginated pages of a fixed
// catalog name list. Choices are page-scoped: re-submitting a page
// replaces only that page's prior contribution.
type MultiChoice struct {
	names    []string
	pageSize int
	page     int
	selected map[string]struct{}
}

// NewMultiChoice builds a paginated session over the given ordered
// name list.
func NewMultiChoice(names []string, pageSize int) *MultiChoice {
	return &MultiChoice{
		names:    names,
		pageSize: pageSize,
		selected: make(map[string]struct{}),
	}
}

// Page returns the current page index.
func (m *MultiChoice) Page() int {
	return m.page
}

// PageCount returns the number of pages needed to show every name.
func (m *MultiChoice) PageCount() int {
	if len(m.names) == 0 {
		return 1
	}
	return (len(m.names) + m.pageSize - 1) / m.pageSize
}

// PageItems returns the names on the current page.
func (m *MultiChoice) PageItems() []string {
	start := m.page * m.pageSize
	if start >= len(m.names) {
		return nil
	}
	end := start + m.pageSize
	if end > len(m.names) {
		end = len(m.names)
	}
	return m.names[start:end]
}

// ChangePage moves the page index by delta, clamped to the valid
// range. Moving past either boundary is a no-op, not an error.
func (m *MultiChoice) ChangePage(delta int) {
	next := m.page + delta
	if next < 0 {
		next = 0
	}
	if max := m.PageCount() - 1; next > max {
		next = max
	}
	m.page = next
}

// SelectOnPage replaces page's contribution to the selection set with
// chosen. Submitting an empty chosen set clears every name previously
// selected from that page.
func (m *MultiChoice) SelectOnPage(page int, chosen []string) {
	start := page * m.pageSize
	end := start + m.pageSize
	if end > len(m.names) {
		end = len(m.names)
	}
	if start < len(m.names) {
		for _, name := range m.names[start:end] {
			delete(m.selected, name)
		}
	}
	for _, name := range chosen {
		m.selected[name] = struct{}{}
	}
}

// IsSelected reports whether name is currently in the selection set.
func (m *MultiChoice) IsSelected(name string) bool {
	_, ok := m.selected[name]
	return ok
}

// Selected returns the selection set in catalog order.
func (m *MultiChoice) Selected() []string {
	out := make([]string, 0, len(m.selected))
	for _, name := range m.names {
		if _, ok := m.selected[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// Total sums the prices of every selected name via lookup. Names the
// lookup no longer knows are skipped. The USD total is present only
// when every counted entry carries one.
func (m *MultiChoice) Total(lookup EntryLookup) pricing.Total {
	var total pricing.Total
	var usd float64
	usdComplete := true
	counted := 0
	for _, name := range m.Selected() {
		entry, err := lookup.LookupAny(name)
		if err != nil {
			continue
		}
		counted++
		total.PKR += entry.PricePKR
		if entry.HasUSD() {
			usd += *entry.PriceUSD
		} else {
			usdComplete = false
		}
	}
	if counted > 0 && usdComplete {
		total.USD = &usd
	}
	return total
}
