package domain

import "time"

// TicketState is a ticket's lifecycle state.
type TicketState string

const (
	// TicketOpen is the initial state; the owner and staff can talk.
	TicketOpen TicketState = "open"
	// TicketPendingClose means a close confirmation is outstanding.
	TicketPendingClose TicketState = "pending_close"
	// TicketClosed means the owner's access has been revoked.
	TicketClosed TicketState = "closed"
	// TicketPendingDelete means a delete confirmation is outstanding.
	TicketPendingDelete TicketState = "pending_delete"
	// TicketDeleted is terminal; the channel resource is gone.
	TicketDeleted TicketState = "deleted"
)

// Ticket is a private support channel opened to complete an order. It owns
// no pricing data; the order is carried for display only.
type Ticket struct {
	ID        string      `json:"id"`
	Owner     Actor       `json:"owner"`
	ChannelID string      `json:"channel_id"`
	Name      string      `json:"name"`
	State     TicketState `json:"state"`
	Order     *Order      `json:"order,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// TranscriptMessage is one message of an exported ticket history.
type TranscriptMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}
