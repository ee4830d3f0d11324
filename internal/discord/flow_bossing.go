package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/metrics"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/order"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/pricing"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

func (h *Handlers) handleBossCategory(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	category := i.MessageComponentData().Values[0]
	entries, err := h.catalogs.Bossing().Entries(category)
	if err != nil || len(entries) == 0 {
		respondError(s, i, domain.ErrNotFound)
		return
	}
	updateView(s, i, &discordgo.MessageEmbed{
		Title:       "🗡️ " + category,
		Description: "Pick a boss to get a price per kill.",
		Color:       embedColor,
	}, stringSelect("bossentry:"+category, "Choose a boss", entryOptions(entries), 1, 1))
}

func (h *Handlers) handleBossEntry(s *discordgo.Session, i *discordgo.InteractionCreate, category string) {
	actor := h.actor(i)
	name := i.MessageComponentData().Values[0]
	entry, err := h.catalogs.Bossing().Lookup(category, name)
	if err != nil {
		respondError(s, i, err)
		return
	}

	choice := &selection.SingleChoice{}
	choice.Choose(category, entry)

	// Zero-priced bossing entries skip the quantity step; staff quote
	// them in the ticket.
	if h.catalogs.Bossing().QuoteRequired(entry) {
		metrics.QuotesRequested.Inc()
		h.sessions.Drop(actor.ID, domain.CatalogBossing)
		finalized, err := order.FinalizeSingle(actor, domain.OrderBossing, choice)
		if err != nil {
			respondError(s, i, err)
			return
		}
		h.openTicketAndRespond(s, i, finalized)
		return
	}

	h.sessions.Put(actor.ID, domain.CatalogBossing, &selection.Session{Single: choice})
	respondModal(s, i, "bossqty", entry.Name,
		textInput{customID: "quantity", label: "How many kills?", placeholder: "10"})
}

func (h *Handlers) handleBossQuantity(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	actor := h.actor(i)
	quantity, err := pricing.ParseQuantity(modalValue(i, "quantity"))
	if err != nil {
		respondError(s, i, err)
		return
	}

	choice, err := h.takeSingle(actor.ID, domain.CatalogBossing)
	if err != nil {
		respondError(s, i, err)
		return
	}
	choice.SetQuantity(quantity)
	metrics.EstimatesComputed.WithLabelValues(string(domain.CatalogBossing)).Inc()

	finalized, err := order.FinalizeSingle(actor, domain.OrderBossing, choice)
	if err != nil {
		respondError(s, i, err)
		return
	}
	h.openTicketAndRespond(s, i, finalized)
}
