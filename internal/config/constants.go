package config

import "time"

// Catalog configuration file paths
const (
	ConfigPathBossing   = "configs/catalogs/bossing.json"
	ConfigPathLeveling  = "configs/catalogs/leveling.json"
	ConfigPathMinigames = "configs/catalogs/minigames.json"
	ConfigPathQuests    = "configs/catalogs/quests.json"

	ConfigPathCatalogSchema = "configs/schemas/catalog.schema.json"
)

// Ticket defaults
const (
	DefaultTicketPrefix = "ticket"
	// DefaultConfirmTimeout bounds how long a close/delete confirmation
	// prompt stays answerable. Expired prompts require a fresh request.
	DefaultConfirmTimeout = 25 * time.Second
)

// Selection session defaults
const (
	DefaultSessionTTL      = 15 * time.Minute
	DefaultMaxOpenSessions = 512
)

// QuestPageSize is the number of quest options shown per page. Discord
// caps a select menu at 25 options, and the selection contract batches
// partial selections at the same size.
const QuestPageSize = 25
