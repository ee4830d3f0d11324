package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/pricing"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

func usd(v float64) *float64 { return &v }

type fakeLookup struct {
	entries map[string]domain.CatalogEntry
}

func (f *fakeLookup) LookupAny(name string) (domain.CatalogEntry, error) {
	entry, ok := f.entries[name]
	if !ok {
		return domain.CatalogEntry{}, domain.ErrNotFound
	}
	return entry, nil
}

var customer = domain.Actor{ID: "100", Username: "zed"}

func TestFinalizeSingle(t *testing.T) {
	t.Run("quantity order", func(t *testing.T) {
		choice := &selection.SingleChoice{}
		choice.Choose("Slayer", domain.CatalogEntry{Name: "Cerberus", PricePKR: 10, PriceUSD: usd(0.04)})
		choice.SetQuantity(10)

		got, err := FinalizeSingle(customer, domain.OrderBossing, choice)
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, domain.OrderBossing, got.Kind)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, "Cerberus", got.Lines[0].Name)
		assert.Equal(t, "x10", got.Lines[0].Detail)
		assert.Equal(t, 100.0, got.Lines[0].TotalPKR)
		assert.Equal(t, 100.0, got.TotalPKR)
		require.NotNil(t, got.TotalUSD)
		assert.InDelta(t, 0.4, *got.TotalUSD, 1e-9)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("xp range order carries the estimate", func(t *testing.T) {
		entry := domain.CatalogEntry{Name: "70-90 Ranged", PricePKR: 5}
		est, err := pricing.PriceByXPRange(entry, 1000000, 1500000)
		require.NoError(t, err)

		choice := &selection.SingleChoice{}
		choice.Choose("Ranged", entry)
		choice.SetEstimate(est)

		got, err := FinalizeSingle(customer, domain.OrderLeveling, choice)
		require.NoError(t, err)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 25000.0, got.Lines[0].TotalPKR)
		assert.Contains(t, got.Lines[0].Detail, "1,000,000 -> 1,500,000 XP")
		assert.Nil(t, got.TotalUSD)
	})

	t.Run("zero-price bossing entry becomes a quote line", func(t *testing.T) {
		choice := &selection.SingleChoice{}
		choice.Choose("Raids", domain.CatalogEntry{Name: "ToB Hard Mode (quote)", PricePKR: 0})

		got, err := FinalizeSingle(customer, domain.OrderBossing, choice)
		require.NoError(t, err)
		require.Len(t, got.Lines, 1)
		assert.True(t, got.Lines[0].QuoteRequired)
		assert.Zero(t, got.TotalPKR)
		assert.Nil(t, got.TotalUSD)
	})

	t.Run("no pick fails", func(t *testing.T) {
		_, err := FinalizeSingle(customer, domain.OrderBossing, &selection.SingleChoice{})
		assert.ErrorIs(t, err, domain.ErrEmptySelection)
	})

	t.Run("pick without quantity fails", func(t *testing.T) {
		choice := &selection.SingleChoice{}
		choice.Choose("Minigames", domain.CatalogEntry{Name: "Fire Cape", PricePKR: 1500})
		_, err := FinalizeSingle(customer, domain.OrderMinigames, choice)
		assert.ErrorIs(t, err, domain.ErrEmptySelection)
	})
}

func TestFinalizeMulti(t *testing.T) {
	lookup := &fakeLookup{entries: map[string]domain.CatalogEntry{
		"Dragon Slayer":   {Name: "Dragon Slayer", PricePKR: 500, PriceUSD: usd(1.79)},
		"Monkey Madness":  {Name: "Monkey Madness", PricePKR: 800, PriceUSD: usd(2.86)},
		"Waterfall Quest": {Name: "Waterfall Quest", PricePKR: 200, PriceUSD: usd(0.71)},
	}}
	pageNames := []string{"Dragon Slayer", "Monkey Madness", "Waterfall Quest"}

	t.Run("one line per selected quest", func(t *testing.T) {
		choice := selection.NewMultiChoice(pageNames, 25)
		choice.SelectOnPage(0, []string{"Dragon Slayer", "Waterfall Quest"})

		got, err := FinalizeMulti(customer, domain.OrderQuests, "Zezima", choice, lookup)
		require.NoError(t, err)
		assert.Equal(t, "Zezima", got.RSN)
		require.Len(t, got.Lines, 2)
		assert.Equal(t, "Dragon Slayer", got.Lines[0].Name)
		assert.Equal(t, "Waterfall Quest", got.Lines[1].Name)
		assert.Equal(t, 700.0, got.TotalPKR)
		require.NotNil(t, got.TotalUSD)
		assert.InDelta(t, 2.5, *got.TotalUSD, 1e-9)
	})

	t.Run("empty selection fails", func(t *testing.T) {
		choice := selection.NewMultiChoice(pageNames, 25)
		_, err := FinalizeMulti(customer, domain.OrderQuests, "Zezima", choice, lookup)
		assert.ErrorIs(t, err, domain.ErrEmptySelection)
	})

	t.Run("stale names are skipped", func(t *testing.T) {
		allNames := append([]string{}, pageNames...)
		allNames = append(allNames, "Removed Quest")
		choice := selection.NewMultiChoice(allNames, 25)
		choice.SelectOnPage(0, []string{"Dragon Slayer", "Removed Quest"})

		got, err := FinalizeMulti(customer, domain.OrderQuests, "Zezima", choice, lookup)
		require.NoError(t, err)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 500.0, got.TotalPKR)
	})
}
