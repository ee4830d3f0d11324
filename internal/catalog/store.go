package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

// Store holds the four service catalogs, built once at startup and
// read-only thereafter.
type Store struct {
	catalogs map[domain.CatalogKind]*Catalog
}

// Catalog is one immutable service catalog: ordered categories of priced
// entries with an index for lookups.
type Catalog struct {
	kind       domain.CatalogKind
	usdRate    float64
	categories []domain.Category
	index      map[string]map[string]domain.CatalogEntry
}

// Catalog returns the catalog of the given kind.
func (s *Store) Catalog(kind domain.CatalogKind) *Catalog {
	return s.catalogs[kind]
}

// Bossing returns the bossing catalog.
func (s *Store) Bossing() *Catalog { return s.catalogs[domain.CatalogBossing] }

// Leveling returns the leveling catalog.
func (s *Store) Leveling() *Catalog { return s.catalogs[domain.CatalogLeveling] }

// Minigames returns the minigames catalog.
func (s *Store) Minigames() *Catalog { return s.catalogs[domain.CatalogMinigames] }

// Quests returns the quests catalog.
func (s *Store) Quests() *Catalog { return s.catalogs[domain.CatalogQuests] }

// Kind identifies which service catalog this is.
func (c *Catalog) Kind() domain.CatalogKind {
	return c.kind
}

// Categories lists category labels in authored order.
func (c *Catalog) Categories() []string {
	labels := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		labels = append(labels, cat.Label)
	}
	return labels
}

// Entries returns a category's entries in authored order.
func (c *Catalog) Entries(category string) ([]domain.CatalogEntry, error) {
	for _, cat := range c.categories {
		if cat.Label == category {
			out := make([]domain.CatalogEntry, len(cat.Entries))
			copy(out, cat.Entries)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: category %q", domain.ErrNotFound, category)
}

// Lookup finds an entry by category and name.
func (c *Catalog) Lookup(category, name string) (domain.CatalogEntry, error) {
	names, ok := c.index[category]
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("%w: category %q", domain.ErrNotFound, category)
	}
	entry, ok := names[name]
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("%w: %q in %q", domain.ErrNotFound, name, category)
	}
	return entry, nil
}

// LookupAny finds an entry by name across all categories, first match in
// authored category order. Single-category catalogs (minigames, quests)
// use this as their primary lookup.
func (c *Catalog) LookupAny(name string) (domain.CatalogEntry, error) {
	for _, cat := range c.categories {
		if entry, ok := c.index[cat.Label][name]; ok {
			return entry, nil
		}
	}
	return domain.CatalogEntry{}, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
}

// QuoteRequired reports whether an entry needs a manual staff quote
// instead of computed pricing. Only catalogs that author the zero-price
// sentinel (bossing) ever return true.
func (c *Catalog) QuoteRequired(entry domain.CatalogEntry) bool {
	return c.kind.UsesQuoteSentinel() && entry.PricePKR == 0
}

// combatTechniques mark entries for shared combat-training methods. Any
// entry whose name mentions one belongs to every combat skill's listing.
var combatTechniques = []string{
	"monkey madness",
	"crabs",
	"nightmare zone",
	"nmz",
	"bursting",
	"chinning",
}

// EntriesForSkill returns the leveling brackets for a skill, sorted by
// name ascending: entries whose name starts with the skill label
// (case-insensitive), plus shared combat-technique entries for combat
// skills. An empty result is valid and means "no pricing data", not an
// error.
func (c *Catalog) EntriesForSkill(skill domain.Skill) []domain.CatalogEntry {
	skillLower := strings.ToLower(string(skill))

	seen := make(map[string]bool)
	var out []domain.CatalogEntry

	for _, cat := range c.categories {
		for _, entry := range cat.Entries {
			nameLower := strings.ToLower(entry.Name)
			if strings.HasPrefix(nameLower, skillLower) || (skill.IsCombat() && mentionsCombatTechnique(nameLower)) {
				if !seen[entry.Name] {
					seen[entry.Name] = true
					out = append(out, entry)
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func mentionsCombatTechnique(nameLower string) bool {
	for _, technique := range combatTechniques {
		if strings.Contains(nameLower, technique) {
			return true
		}
	}
	return false
}

// SortedNames returns every entry name across all categories, sorted
// case-insensitively. The quest flow pages over this ordering.
func (c *Catalog) SortedNames() []string {
	var names []string
	for _, cat := range c.categories {
		for _, entry := range cat.Entries {
			names = append(names, entry.Name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}
