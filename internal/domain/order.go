package domain

import "time"

// OrderKind identifies which service flow produced an order.
type OrderKind string

const (
	OrderBossing   OrderKind = "bossing"
	OrderLeveling  OrderKind = "leveling"
	OrderMinigames OrderKind = "minigames"
	OrderQuests    OrderKind = "quests"
)

// OrderLine is one itemized line of a finalized order.
type OrderLine struct {
	Name string `json:"name"`
	// Detail describes the quantity or XP range the line was priced
	// against, e.g. "x10" or "1,000,000 -> 1,500,000 XP".
	Detail string `json:"detail"`
	// TotalPKR is the line total in PKR.
	TotalPKR float64 `json:"total_pkr"`
	// TotalUSD is the line total in USD, nil when no USD price exists.
	TotalUSD *float64 `json:"total_usd,omitempty"`
	// QuoteRequired marks a line that staff must price manually.
	QuoteRequired bool `json:"quote_required,omitempty"`
}

// Order is an immutable snapshot built once by order assembly and attached
// to a ticket-creation request. It is never mutated after creation.
type Order struct {
	ID        string      `json:"id"`
	Kind      OrderKind   `json:"kind"`
	Customer  Actor       `json:"customer"`
	RSN       string      `json:"rsn,omitempty"`
	Lines     []OrderLine `json:"lines"`
	TotalPKR  float64     `json:"total_pkr"`
	TotalUSD  *float64    `json:"total_usd,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Actor is a user acting on the bot: an order customer or a staff member.
type Actor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Staff    bool   `json:"staff"`
}
