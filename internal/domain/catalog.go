package domain

// CatalogEntry is one purchasable unit of service: a boss kill, a leveling
// bracket, a minigame run or a quest completion.
type CatalogEntry struct {
	// Name is unique within its category.
	Name string `json:"name"`
	// PricePKR is the unit price in PKR. Zero is the "quote required"
	// sentinel in catalogs that opt into it, not a free service.
	PricePKR float64 `json:"price_pkr"`
	// PriceUSD is the unit price in USD. Nil when the authored USD value
	// could not be parsed; totals then omit USD instead of showing $0.00.
	PriceUSD *float64 `json:"price_usd,omitempty"`
}

// HasUSD reports whether a reference-currency price is available.
func (e CatalogEntry) HasUSD() bool {
	return e.PriceUSD != nil
}

// Category is a named group of catalog entries, e.g. "Slayer" or
// "Wilderness Bossing". Entry order is the authored order.
type Category struct {
	Label   string         `json:"label"`
	Entries []CatalogEntry `json:"entries"`
}

// CatalogKind identifies which of the four service catalogs an entry
// belongs to. The kind decides pricing policy details such as the
// zero-price quote sentinel.
type CatalogKind string

const (
	CatalogBossing   CatalogKind = "bossing"
	CatalogLeveling  CatalogKind = "leveling"
	CatalogMinigames CatalogKind = "minigames"
	CatalogQuests    CatalogKind = "quests"
)

// UsesQuoteSentinel reports whether a zero PKR price in this catalog means
// "open a ticket for a manual quote". Only the bossing tables author that
// sentinel; a zero price anywhere else is a data mistake, not a policy.
func (k CatalogKind) UsesQuoteSentinel() bool {
	return k == CatalogBossing
}
