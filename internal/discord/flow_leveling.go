package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/metrics"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/order"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/pricing"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

func (h *Handlers) handleSkillSelect(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	skill, ok := domain.ParseSkill(i.MessageComponentData().Values[0])
	if !ok {
		respondError(s, i, domain.ErrNotFound)
		return
	}

	entries := h.catalogs.Leveling().EntriesForSkill(skill)
	if len(entries) == 0 {
		respondEphemeral(s, i, MsgNoPricingData)
		return
	}

	updateView(s, i, ratesEmbed(skill, entries),
		stringSelect("lvlentry:"+string(skill), "Choose a bracket", entryOptions(entries), 1, 1))
}

func (h *Handlers) handleBracketSelect(s *discordgo.Session, i *discordgo.InteractionCreate, skill string) {
	actor := h.actor(i)
	name := i.MessageComponentData().Values[0]
	entry, err := h.catalogs.Leveling().LookupAny(name)
	if err != nil {
		respondError(s, i, err)
		return
	}

	choice := &selection.SingleChoice{}
	choice.Choose(skill, entry)
	h.sessions.Put(actor.ID, domain.CatalogLeveling, &selection.Session{Single: choice})

	respondModal(s, i, "lvlxp", entry.Name,
		textInput{customID: "fromxp", label: "From XP", placeholder: "1,000,000 or 1m"},
		textInput{customID: "toxp", label: "To XP", placeholder: "1,500,000 or 1.5m"})
}

func (h *Handlers) handleXPModal(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	actor := h.actor(i)

	startXP, err := pricing.ParseXP(modalValue(i, "fromxp"))
	if err != nil {
		respondError(s, i, err)
		return
	}
	endXP, err := pricing.ParseXP(modalValue(i, "toxp"))
	if err != nil {
		respondError(s, i, err)
		return
	}

	sess, ok := h.sessions.Get(actor.ID, domain.CatalogLeveling)
	if !ok || sess.Single == nil {
		respondEphemeral(s, i, MsgSessionExpired)
		return
	}
	entry, chosen := sess.Single.Chosen()
	if !chosen {
		respondEphemeral(s, i, MsgSessionExpired)
		return
	}

	est, err := pricing.PriceByXPRange(entry, startXP, endXP)
	if err != nil {
		respondError(s, i, err)
		return
	}
	sess.Single.SetEstimate(est)
	h.sessions.Put(actor.ID, domain.CatalogLeveling, sess)
	metrics.EstimatesComputed.WithLabelValues(string(domain.CatalogLeveling)).Inc()

	respondEphemeralEmbed(s, i, estimateEmbed(entry, est),
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "🎫 Create Ticket", Style: discordgo.SuccessButton, CustomID: "lvlcreate"},
			},
		})
}

func (h *Handlers) handleLevelingCreate(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	actor := h.actor(i)
	choice, err := h.takeSingle(actor.ID, domain.CatalogLeveling)
	if err != nil {
		respondError(s, i, err)
		return
	}

	finalized, err := order.FinalizeSingle(actor, domain.OrderLeveling, choice)
	if err != nil {
		respondError(s, i, err)
		return
	}
	h.openTicketAndRespond(s, i, finalized)
}
