package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/metrics"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/order"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/pricing"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

func (h *Handlers) handleMinigameSelect(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	actor := h.actor(i)
	name := i.MessageComponentData().Values[0]
	entry, err := h.catalogs.Minigames().LookupAny(name)
	if err != nil {
		respondError(s, i, err)
		return
	}

	choice := &selection.SingleChoice{}
	choice.Choose(h.catalogs.Minigames().Categories()[0], entry)
	h.sessions.Put(actor.ID, domain.CatalogMinigames, &selection.Session{Single: choice})

	respondModal(s, i, "miniqty", entry.Name,
		textInput{customID: "quantity", label: "How many?", placeholder: "1"})
}

func (h *Handlers) handleMinigameQuantity(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	actor := h.actor(i)
	quantity, err := pricing.ParseQuantity(modalValue(i, "quantity"))
	if err != nil {
		respondError(s, i, err)
		return
	}

	choice, err := h.takeSingle(actor.ID, domain.CatalogMinigames)
	if err != nil {
		respondError(s, i, err)
		return
	}
	choice.SetQuantity(quantity)
	metrics.EstimatesComputed.WithLabelValues(string(domain.CatalogMinigames)).Inc()

	finalized, err := order.FinalizeSingle(actor, domain.OrderMinigames, choice)
	if err != nil {
		respondError(s, i, err)
		return
	}
	h.openTicketAndRespond(s, i, finalized)
}
