package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/validation"
)

// Sentinel errors for catalog loading
var (
	ErrDuplicateEntryName = errors.New("duplicate entry name")
	ErrInvalidConfig      = errors.New("invalid catalog configuration")
)

// File represents one catalog JSON configuration file
type File struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	// Kind declares which service catalog the file defines.
	Kind string `json:"kind" validate:"required,oneof=bossing leveling minigames quests"`
	// UsdRate is the fixed PKR-per-USD conversion rate. When set, entries
	// without an authored USD price get one derived from it at build time.
	UsdRate    float64       `json:"usd_rate,omitempty" validate:"gte=0"`
	Categories []CategoryDef `json:"categories" validate:"min=1,dive"`
}

// CategoryDef is a named group of entries in a catalog file
type CategoryDef struct {
	Label   string     `json:"label" validate:"required"`
	Entries []EntryDef `json:"entries" validate:"min=1,dive"`
}

// EntryDef is a single priced service in a catalog file
type EntryDef struct {
	Name     string  `json:"name" validate:"required"`
	PricePKR float64 `json:"price_pkr" validate:"gte=0"`
	// PriceUSD is the hand-authored USD price, e.g. "$0.04". Values that
	// do not parse as dollars leave the built entry without a USD price.
	PriceUSD string `json:"price_usd,omitempty"`
}

// Loader reads and validates catalog configuration files
type Loader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
	schemaPath      string
}

// NewLoader creates a loader that checks files against the given JSON schema
func NewLoader(schemaPath string) *Loader {
	return &Loader{
		schemaValidator: validation.NewSchemaValidator(),
		validate:        validator.New(),
		schemaPath:      schemaPath,
	}
}

// LoadFile reads, schema-validates and decodes one catalog file
func (l *Loader) LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return &file, nil
}

// Build converts a decoded file into a Catalog, deriving USD prices and
// rejecting duplicate entry names within a category.
func Build(file *File) (*Catalog, error) {
	kind := domain.CatalogKind(file.Kind)

	c := &Catalog{
		kind:    kind,
		usdRate: file.UsdRate,
		index:   make(map[string]map[string]domain.CatalogEntry, len(file.Categories)),
	}

	for _, catDef := range file.Categories {
		if _, exists := c.index[catDef.Label]; exists {
			return nil, fmt.Errorf("%w: category %q defined twice", ErrInvalidConfig, catDef.Label)
		}

		cat := domain.Category{Label: catDef.Label, Entries: make([]domain.CatalogEntry, 0, len(catDef.Entries))}
		names := make(map[string]domain.CatalogEntry, len(catDef.Entries))

		for _, entryDef := range catDef.Entries {
			if _, exists := names[entryDef.Name]; exists {
				return nil, fmt.Errorf("%w: %q in category %q", ErrDuplicateEntryName, entryDef.Name, catDef.Label)
			}

			entry := domain.CatalogEntry{
				Name:     entryDef.Name,
				PricePKR: entryDef.PricePKR,
				PriceUSD: buildUSD(entryDef, file.UsdRate),
			}
			names[entry.Name] = entry
			cat.Entries = append(cat.Entries, entry)
		}

		c.categories = append(c.categories, cat)
		c.index[cat.Label] = names
	}

	return c, nil
}

// buildUSD resolves an entry's USD price: authored dollars win, then the
// fixed conversion rate, then nothing.
func buildUSD(def EntryDef, usdRate float64) *float64 {
	if def.PriceUSD != "" {
		if usd, ok := parseUSD(def.PriceUSD); ok {
			return &usd
		}
		// Authored but unparseable: totals must omit USD, not show $0.00.
		return nil
	}
	if usdRate > 0 {
		usd := math.Round(def.PricePKR/usdRate*10000) / 10000
		return &usd
	}
	return nil
}

// parseUSD parses a "$1.61"-style authored price
func parseUSD(text string) (float64, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "$"))
	usd, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || usd < 0 {
		return 0, false
	}
	return usd, true
}

// Load reads every given catalog file and assembles the store. Each file
// declares its own kind; a missing or duplicated kind is a fatal
// configuration error.
func Load(schemaPath string, paths ...string) (*Store, error) {
	loader := NewLoader(schemaPath)
	catalogs := make(map[domain.CatalogKind]*Catalog, len(paths))

	for _, path := range paths {
		file, err := loader.LoadFile(path)
		if err != nil {
			return nil, err
		}

		c, err := Build(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if _, exists := catalogs[c.Kind()]; exists {
			return nil, fmt.Errorf("%w: kind %q loaded twice", ErrInvalidConfig, c.Kind())
		}
		catalogs[c.Kind()] = c
	}

	for _, kind := range []domain.CatalogKind{domain.CatalogBossing, domain.CatalogLeveling, domain.CatalogMinigames, domain.CatalogQuests} {
		if _, ok := catalogs[kind]; !ok {
			return nil, fmt.Errorf("%w: no %q catalog loaded", ErrInvalidConfig, kind)
		}
	}

	return &Store{catalogs: catalogs}, nil
}
