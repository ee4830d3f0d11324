package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ComponentHandler handles a component or modal interaction. arg is the
// part of the custom ID after the registered prefix.
type ComponentHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, arg string)

// ComponentRegistry routes component and modal interactions by custom ID
// prefix. Custom IDs are "<prefix>" or "<prefix>:<arg>".
type ComponentRegistry struct {
	handlers map[string]ComponentHandler
}

// NewComponentRegistry creates an empty component router
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{handlers: make(map[string]ComponentHandler)}
}

// Register adds a handler for custom IDs starting with prefix.
func (r *ComponentRegistry) Register(prefix string, handler ComponentHandler) {
	r.handlers[prefix] = handler
}

// Handle dispatches an interaction to the handler owning its prefix.
func (r *ComponentRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := interactionCustomID(i)
	prefix, arg := splitCustomID(customID)
	if h, ok := r.handlers[prefix]; ok {
		h(s, i, arg)
	}
}

func interactionCustomID(i *discordgo.InteractionCreate) string {
	if i.Type == discordgo.InteractionModalSubmit {
		return i.ModalSubmitData().CustomID
	}
	return i.MessageComponentData().CustomID
}

func splitCustomID(customID string) (prefix, arg string) {
	if idx := strings.Index(customID, ":"); idx >= 0 {
		return customID[:idx], customID[idx+1:]
	}
	return customID, ""
}
