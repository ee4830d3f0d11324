package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/metrics"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

// handleFlowButton starts one of the four order flows from the panel.
func (h *Handlers) handleFlowButton(s *discordgo.Session, i *discordgo.InteractionCreate, arg string) {
	actor := h.actor(i)
	switch arg {
	case "bossing":
		h.sessions.Put(actor.ID, domain.CatalogBossing, &selection.Session{Single: &selection.SingleChoice{}})
		respondEphemeral(s, i, "🗡️ **Bossing** — pick a category:",
			stringSelect("bosscat", "Choose a category", categoryOptions(h.catalogs.Bossing()), 1, 1))
	case "leveling":
		h.sessions.Put(actor.ID, domain.CatalogLeveling, &selection.Session{Single: &selection.SingleChoice{}})
		respondEphemeral(s, i, "📈 **Leveling** — pick a skill:",
			stringSelect("lvlskill", "Choose a skill", skillOptions(), 1, 1))
	case "minigames":
		h.sessions.Put(actor.ID, domain.CatalogMinigames, &selection.Session{Single: &selection.SingleChoice{}})
		category := h.catalogs.Minigames().Categories()[0]
		entries, err := h.catalogs.Minigames().Entries(category)
		if err != nil {
			respondError(s, i, err)
			return
		}
		respondEphemeral(s, i, "🏆 **Minigames** — pick a service:",
			stringSelect("minientry", "Choose a service", entryOptions(entries), 1, 1))
	case "quests":
		respondModal(s, i, "questrsn", "Quest Services",
			textInput{customID: "rsn", label: "Your RuneScape name", placeholder: "Zezima"})
	}
}

func skillOptions() []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(domain.Skills))
	for _, skill := range domain.Skills {
		options = append(options, discordgo.SelectMenuOption{
			Label: string(skill),
			Value: string(skill),
		})
	}
	return options
}

// openTicketAndRespond finalizes the shared tail of every flow: open
// the ticket channel, post the order summary with the close control,
// and point the customer at it.
func (h *Handlers) openTicketAndRespond(s *discordgo.Session, i *discordgo.InteractionCreate, order *domain.Order) {
	ctx := requestContext()
	tkt, err := h.tickets.Open(ctx, order.Customer, order)
	if err != nil {
		respondError(s, i, err)
		return
	}
	metrics.OrdersCreated.WithLabelValues(string(order.Kind)).Inc()

	_, err = s.ChannelMessageSendComplex(tkt.ChannelID, &discordgo.MessageSend{
		Content:    fmt.Sprintf("Welcome <@%s>! A staff member will be with you shortly.", order.Customer.ID),
		Embeds:     []*discordgo.MessageEmbed{orderEmbed(order)},
		Components: ticketControls(tkt.ID),
	})
	if err != nil {
		slog.Error("Failed to post order summary", "ticket_id", tkt.ID, "error", err)
	}

	respondEphemeral(s, i, fmt.Sprintf("🎫 Ticket created: <#%s>", tkt.ChannelID))
}

// takeSingle consumes the user's single-choice session for flow.
func (h *Handlers) takeSingle(actorID string, flow domain.CatalogKind) (*selection.SingleChoice, error) {
	sess, ok := h.sessions.Take(actorID, flow)
	if !ok || sess.Single == nil {
		return nil, domain.ErrSessionNotFound
	}
	return sess.Single, nil
}
