package selection

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

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

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Quest %02d", i)
	}
	return out
}

func TestSingleChoice(t *testing.T) {
	t.Run("new choice overwrites the previous one", func(t *testing.T) {
		var s SingleChoice
		s.Choose("Slayer", domain.CatalogEntry{Name: "Cerberus", PricePKR: 10})
		s.SetQuantity(5)

		s.Choose("Wilderness Bossing", domain.CatalogEntry{Name: "Callisto", PricePKR: 12})
		entry, ok := s.Chosen()
		require.True(t, ok)
		assert.Equal(t, "Callisto", entry.Name)
		assert.Equal(t, "Wilderness Bossing", s.Category())

		_, hasQty := s.Quantity()
		assert.False(t, hasQty, "quantity should not survive a re-pick")
		assert.Nil(t, s.Estimate())
	})

	t.Run("empty session has no pick", func(t *testing.T) {
		var s SingleChoice
		_, ok := s.Chosen()
		assert.False(t, ok)
	})
}

func TestMultiChoicePaging(t *testing.T) {
	t.Run("page count and items", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		assert.Equal(t, 4, m.PageCount())
		assert.Len(t, m.PageItems(), 25)

		m.ChangePage(3)
		assert.Equal(t, 3, m.Page())
		assert.Len(t, m.PageItems(), 5)
	})

	t.Run("clamps at both boundaries", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.ChangePage(-1)
		assert.Equal(t, 0, m.Page())
		m.ChangePage(100)
		assert.Equal(t, 3, m.Page())
		m.ChangePage(1)
		assert.Equal(t, 3, m.Page())
	})

	t.Run("single page when list fits", func(t *testing.T) {
		m := NewMultiChoice(names(10), 25)
		assert.Equal(t, 1, m.PageCount())
		m.ChangePage(1)
		assert.Equal(t, 0, m.Page())
	})
}

func TestMultiChoiceSelectOnPage(t *testing.T) {
	t.Run("accumulates across pages", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.SelectOnPage(0, []string{"Quest 03", "Quest 10"})
		m.SelectOnPage(1, []string{"Quest 30"})
		assert.Equal(t, []string{"Quest 03", "Quest 10", "Quest 30"}, m.Selected())
	})

	t.Run("resubmitting a page replaces its contribution", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.SelectOnPage(0, []string{"Quest 03", "Quest 10"})
		m.SelectOnPage(1, []string{"Quest 30"})

		m.SelectOnPage(0, []string{"Quest 05"})
		assert.Equal(t, []string{"Quest 05", "Quest 30"}, m.Selected())
	})

	t.Run("empty submission clears the page", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.SelectOnPage(0, []string{"Quest 03", "Quest 10"})
		m.SelectOnPage(0, nil)
		assert.Empty(t, m.Selected())
	})

	t.Run("other pages are untouched", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.SelectOnPage(1, []string{"Quest 30", "Quest 42"})
		m.SelectOnPage(0, nil)
		assert.Equal(t, []string{"Quest 30", "Quest 42"}, m.Selected())
		assert.True(t, m.IsSelected("Quest 42"))
	})
}

func TestMultiChoiceTotal(t *testing.T) {
	usd := func(v float64) *float64 { return &v }
	lookup := &fakeLookup{entries: map[string]domain.CatalogEntry{
		"Quest 00": {Name: "Quest 00", PricePKR: 500, PriceUSD: usd(1.79)},
		"Quest 01": {Name: "Quest 01", PricePKR: 300, PriceUSD: usd(1.07)},
		"Quest 02": {Name: "Quest 02", PricePKR: 200},
	}}

	t.Run("sums selected entries", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.SelectOnPage(0, []string{"Quest 00", "Quest 01"})
		total := m.Total(lookup)
		assert.Equal(t, 800.0, total.PKR)
		require.NotNil(t, total.USD)
		assert.InDelta(t, 2.86, *total.USD, 1e-9)
	})

	t.Run("skips names the catalog no longer has", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.SelectOnPage(0, []string{"Quest 00", "Quest 07"})
		total := m.Total(lookup)
		assert.Equal(t, 500.0, total.PKR)
	})

	t.Run("omits USD when any counted entry lacks one", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		m.SelectOnPage(0, []string{"Quest 00", "Quest 02"})
		total := m.Total(lookup)
		assert.Equal(t, 700.0, total.PKR)
		assert.Nil(t, total.USD)
	})

	t.Run("empty selection totals zero with no USD", func(t *testing.T) {
		m := NewMultiChoice(names(80), 25)
		total := m.Total(lookup)
		assert.Zero(t, total.PKR)
		assert.Nil(t, total.USD)
	})
}

func TestStore(t *testing.T) {
	t.Run("take consumes the session", func(t *testing.T) {
		store := NewStore(8, time.Minute)
		store.Put("user1", domain.CatalogQuests, &Session{Multi: NewMultiChoice(names(30), 25)})

		session, ok := store.Take("user1", domain.CatalogQuests)
		require.True(t, ok)
		require.NotNil(t, session.Multi)

		_, ok = store.Take("user1", domain.CatalogQuests)
		assert.False(t, ok, "a session is consumed at most once")
	})

	t.Run("sessions are scoped per flow", func(t *testing.T) {
		store := NewStore(8, time.Minute)
		store.Put("user1", domain.CatalogBossing, &Session{Single: &SingleChoice{}})
		store.Put("user1", domain.CatalogQuests, &Session{Multi: NewMultiChoice(names(30), 25)})

		_, ok := store.Get("user1", domain.CatalogBossing)
		assert.True(t, ok)
		store.Drop("user1", domain.CatalogBossing)
		_, ok = store.Get("user1", domain.CatalogBossing)
		assert.False(t, ok)
		_, ok = store.Get("user1", domain.CatalogQuests)
		assert.True(t, ok)
	})

	t.Run("get does not consume", func(t *testing.T) {
		store := NewStore(8, time.Minute)
		store.Put("user1", domain.CatalogLeveling, &Session{Single: &SingleChoice{}})
		_, ok := store.Get("user1", domain.CatalogLeveling)
		require.True(t, ok)
		_, ok = store.Get("user1", domain.CatalogLeveling)
		assert.True(t, ok)
	})
}
