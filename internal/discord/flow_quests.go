package discord

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/config"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/metrics"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/order"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

func (h *Handlers) handleQuestRSN(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	actor := h.actor(i)
	rsn := strings.TrimSpace(modalValue(i, "rsn"))

	multi := selection.NewMultiChoice(h.catalogs.Quests().SortedNames(), config.QuestPageSize)
	h.sessions.Put(actor.ID, domain.CatalogQuests, &selection.Session{Multi: multi, RSN: rsn})

	embed, components := questView(multi, h.catalogs.Quests())
	respondEphemeralEmbed(s, i, embed, components...)
}

func (h *Handlers) handleQuestPage(s *discordgo.Session, i *discordgo.InteractionCreate, arg string) {
	actor := h.actor(i)
	page, err := strconv.Atoi(arg)
	if err != nil {
		respondEphemeral(s, i, MsgSessionExpired)
		return
	}

	sess, ok := h.sessions.Get(actor.ID, domain.CatalogQuests)
	if !ok || sess.Multi == nil {
		respondEphemeral(s, i, MsgSessionExpired)
		return
	}

	sess.Multi.SelectOnPage(page, i.MessageComponentData().Values)
	h.sessions.Put(actor.ID, domain.CatalogQuests, sess)

	embed, components := questView(sess.Multi, h.catalogs.Quests())
	updateView(s, i, embed, components...)
}

func (h *Handlers) handleQuestNav(s *discordgo.Session, i *discordgo.InteractionCreate, arg string) {
	actor := h.actor(i)
	sess, ok := h.sessions.Get(actor.ID, domain.CatalogQuests)
	if !ok || sess.Multi == nil {
		respondEphemeral(s, i, MsgSessionExpired)
		return
	}

	delta := 1
	if arg == "prev" {
		delta = -1
	}
	sess.Multi.ChangePage(delta)
	h.sessions.Put(actor.ID, domain.CatalogQuests, sess)

	embed, components := questView(sess.Multi, h.catalogs.Quests())
	updateView(s, i, embed, components...)
}

func (h *Handlers) handleQuestConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, _ string) {
	actor := h.actor(i)
	sess, ok := h.sessions.Take(actor.ID, domain.CatalogQuests)
	if !ok || sess.Multi == nil {
		respondEphemeral(s, i, MsgSessionExpired)
		return
	}

	finalized, err := order.FinalizeMulti(actor, domain.OrderQuests, sess.RSN, sess.Multi, h.catalogs.Quests())
	if err != nil {
		// Nothing picked yet; give the session back so the panel keeps
		// working.
		h.sessions.Put(actor.ID, domain.CatalogQuests, sess)
		respondError(s, i, err)
		return
	}
	metrics.EstimatesComputed.WithLabelValues(string(domain.CatalogQuests)).Inc()
	h.openTicketAndRespond(s, i, finalized)
}
