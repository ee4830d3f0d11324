package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

func buildTestCatalog(t *testing.T, file *File) *Catalog {
	t.Helper()
	c, err := Build(file)
	require.NoError(t, err)
	return c
}

func testBossingFile() *File {
	return &File{
		Version: "1.0",
		Kind:    "bossing",
		Categories: []CategoryDef{
			{
				Label: "Slayer",
				Entries: []EntryDef{
					{Name: "Cerberus", PricePKR: 10, PriceUSD: "$0.04"},
					{Name: "Hydra", PricePKR: 15, PriceUSD: "$0.05"},
				},
			},
			{
				Label: "Miscellaneous",
				Entries: []EntryDef{
					{Name: "Zulrah", PricePKR: 12.5, PriceUSD: "$0.04"},
					{Name: "God Wars Dungeon (quote)", PricePKR: 0, PriceUSD: "$0.00"},
				},
			},
		},
	}
}

func testLevelingFile() *File {
	return &File{
		Version: "1.0",
		Kind:    "leveling",
		UsdRate: 280,
		Categories: []CategoryDef{
			{
				Label: "Combat Training",
				Entries: []EntryDef{
					{Name: "Monkey Madness 1 - Bursting", PricePKR: 1.0},
					{Name: "Nightmare Zone (70-99 Melee)", PricePKR: 0.5},
					{Name: "Rock/Sand Crabs (1-70 All)", PricePKR: 1.75},
				},
			},
			{
				Label: "Woodcutting",
				Entries: []EntryDef{
					{Name: "Woodcutting 1-15", PricePKR: 5},
					{Name: "Woodcutting 90-99", PricePKR: 1.25},
				},
			},
			{
				Label: "Slayer",
				Entries: []EntryDef{
					{Name: "Slayer 1-50", PricePKR: 6},
				},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Run("preserves category order", func(t *testing.T) {
		c := buildTestCatalog(t, testBossingFile())
		assert.Equal(t, []string{"Slayer", "Miscellaneous"}, c.Categories())
	})

	t.Run("parses authored USD prices", func(t *testing.T) {
		c := buildTestCatalog(t, testBossingFile())
		entry, err := c.Lookup("Slayer", "Cerberus")
		require.NoError(t, err)
		require.True(t, entry.HasUSD())
		assert.InDelta(t, 0.04, *entry.PriceUSD, 1e-9)
	})

	t.Run("derives USD from fixed rate when not authored", func(t *testing.T) {
		c := buildTestCatalog(t, testLevelingFile())
		entry, err := c.Lookup("Woodcutting", "Woodcutting 1-15")
		require.NoError(t, err)
		require.True(t, entry.HasUSD())
		// 5 PKR / 280 PKR-per-USD
		assert.InDelta(t, 0.0179, *entry.PriceUSD, 1e-9)
	})

	t.Run("unparseable authored USD leaves entry without USD", func(t *testing.T) {
		file := testBossingFile()
		file.Categories[0].Entries[0].PriceUSD = "ask staff"
		c := buildTestCatalog(t, file)
		entry, err := c.Lookup("Slayer", "Cerberus")
		require.NoError(t, err)
		assert.False(t, entry.HasUSD())
	})

	t.Run("rejects duplicate entry names within a category", func(t *testing.T) {
		file := testBossingFile()
		file.Categories[0].Entries = append(file.Categories[0].Entries, EntryDef{Name: "Cerberus", PricePKR: 99})
		_, err := Build(file)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateEntryName)
	})

	t.Run("allows the same name in different categories", func(t *testing.T) {
		file := testBossingFile()
		file.Categories[1].Entries = append(file.Categories[1].Entries, EntryDef{Name: "Cerberus", PricePKR: 99})
		_, err := Build(file)
		require.NoError(t, err)
	})
}

func TestCatalogLookup(t *testing.T) {
	c := buildTestCatalog(t, testBossingFile())

	t.Run("unknown category", func(t *testing.T) {
		_, err := c.Lookup("Raids", "Cerberus")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown entry", func(t *testing.T) {
		_, err := c.Lookup("Slayer", "Vorkath")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("lookup any category", func(t *testing.T) {
		entry, err := c.LookupAny("Zulrah")
		require.NoError(t, err)
		assert.Equal(t, 12.5, entry.PricePKR)

		_, err = c.LookupAny("Vorkath")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("entries returns authored order", func(t *testing.T) {
		entries, err := c.Entries("Slayer")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Cerberus", entries[0].Name)
		assert.Equal(t, "Hydra", entries[1].Name)
	})
}

func TestQuoteRequired(t *testing.T) {
	t.Run("zero price in bossing is the quote sentinel", func(t *testing.T) {
		c := buildTestCatalog(t, testBossingFile())
		entry, err := c.Lookup("Miscellaneous", "God Wars Dungeon (quote)")
		require.NoError(t, err)
		assert.True(t, c.QuoteRequired(entry))

		priced, err := c.Lookup("Slayer", "Cerberus")
		require.NoError(t, err)
		assert.False(t, c.QuoteRequired(priced))
	})

	t.Run("zero price outside bossing is not a quote", func(t *testing.T) {
		file := testLevelingFile()
		file.Categories[1].Entries[0].PricePKR = 0
		c := buildTestCatalog(t, file)
		entry, err := c.Lookup("Woodcutting", "Woodcutting 1-15")
		require.NoError(t, err)
		assert.False(t, c.QuoteRequired(entry))
	})
}

func TestEntriesForSkill(t *testing.T) {
	c := buildTestCatalog(t, testLevelingFile())

	t.Run("prefix match is case-insensitive", func(t *testing.T) {
		entries := c.EntriesForSkill(domain.SkillWoodcutting)
		require.Len(t, entries, 2)
		assert.Equal(t, "Woodcutting 1-15", entries[0].Name)
	})

	t.Run("combat skills include shared techniques", func(t *testing.T) {
		entries := c.EntriesForSkill(domain.SkillStrength)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name)
		}
		assert.Contains(t, names, "Monkey Madness 1 - Bursting")
		assert.Contains(t, names, "Nightmare Zone (70-99 Melee)")
		assert.Contains(t, names, "Rock/Sand Crabs (1-70 All)")
	})

	t.Run("non-combat skills exclude shared techniques", func(t *testing.T) {
		entries := c.EntriesForSkill(domain.SkillWoodcutting)
		for _, e := range entries {
			assert.NotContains(t, e.Name, "Monkey Madness")
		}
	})

	t.Run("results sorted by name ascending", func(t *testing.T) {
		entries := c.EntriesForSkill(domain.SkillMagic)
		require.Len(t, entries, 3)
		assert.Equal(t, "Monkey Madness 1 - Bursting", entries[0].Name)
		assert.Equal(t, "Nightmare Zone (70-99 Melee)", entries[1].Name)
		assert.Equal(t, "Rock/Sand Crabs (1-70 All)", entries[2].Name)
	})

	t.Run("skill with no entries returns empty, not error", func(t *testing.T) {
		entries := c.EntriesForSkill(domain.SkillHerblore)
		assert.Empty(t, entries)
	})

	t.Run("prefix match does not bleed across skills", func(t *testing.T) {
		entries := c.EntriesForSkill(domain.SkillSlayer)
		require.Len(t, entries, 1)
		assert.Equal(t, "Slayer 1-50", entries[0].Name)
	})
}

func TestSortedNames(t *testing.T) {
	c := buildTestCatalog(t, testBossingFile())
	names := c.SortedNames()
	require.Len(t, names, 4)
	assert.Equal(t, []string{"Cerberus", "God Wars Dungeon (quote)", "Hydra", "Zulrah"}, names)
}
