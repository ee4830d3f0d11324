package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

func (h *Handlers) handleTicketClose(s *discordgo.Session, i *discordgo.InteractionCreate, ticketID string) {
	actor := h.actor(i)
	token, err := h.tickets.RequestClose(requestContext(), ticketID, actor)
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondEphemeral(s, i, "🔒 Close this ticket?", confirmRow("tcloseok", token)...)
}

func (h *Handlers) handleTicketCloseConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, arg string) {
	token, accept := splitConfirmArg(arg)
	tkt, err := h.tickets.ConfirmClose(requestContext(), token, accept)
	if err != nil {
		respondError(s, i, err)
		return
	}

	if !accept {
		updateText(s, i, "Close cancelled.")
		return
	}

	updateText(s, i, "🔒 Ticket closed.")
	actor := h.actor(i)
	_, err = s.ChannelMessageSendComplex(tkt.ChannelID, &discordgo.MessageSend{
		Content:    fmt.Sprintf("Ticket closed by **%s**. Staff controls:", actor.Username),
		Components: staffControls(tkt.ID),
	})
	if err != nil {
		slog.Error("Failed to post staff controls", "ticket_id", tkt.ID, "error", err)
	}
}

func (h *Handlers) handleTicketReopen(s *discordgo.Session, i *discordgo.InteractionCreate, ticketID string) {
	actor := h.actor(i)
	tkt, err := h.tickets.Reopen(requestContext(), ticketID, actor)
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("🔓 Ticket reopened for <@%s>.", tkt.Owner.ID))
}

func (h *Handlers) handleTicketDelete(s *discordgo.Session, i *discordgo.InteractionCreate, ticketID string) {
	actor := h.actor(i)
	token, err := h.tickets.RequestDelete(requestContext(), ticketID, actor)
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondEphemeral(s, i, "🗑️ This permanently deletes the channel and its history. Are you sure?",
		confirmRow("tdeleteok", token)...)
}

func (h *Handlers) handleTicketDeleteConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, arg string) {
	token, accept := splitConfirmArg(arg)

	if !accept {
		if _, err := h.tickets.ConfirmDelete(requestContext(), token, false); err != nil {
			respondError(s, i, err)
			return
		}
		updateText(s, i, "Delete cancelled.")
		return
	}

	// Answer the interaction before the channel disappears underneath
	// it.
	updateText(s, i, "🗑️ Deleting ticket...")
	if _, err := h.tickets.ConfirmDelete(requestContext(), token, true); err != nil {
		followupError(s, i, err)
	}
}

func (h *Handlers) handleTicketTranscript(s *discordgo.Session, i *discordgo.InteractionCreate, ticketID string) {
	actor := h.actor(i)
	err := h.tickets.SendTranscript(requestContext(), ticketID, actor)
	switch {
	case err == nil:
		respondEphemeral(s, i, "📬 Transcript sent to your DMs.")
	case errors.Is(err, domain.ErrExternalEffect):
		respondEphemeral(s, i, MsgDMFailed)
	default:
		respondError(s, i, err)
	}
}

func splitConfirmArg(arg string) (token string, accept bool) {
	token, answer := arg, ""
	if idx := strings.LastIndex(arg, ":"); idx >= 0 {
		token, answer = arg[:idx], arg[idx+1:]
	}
	return token, answer == "yes"
}

// updateText replaces the prompt message with plain text and strips its
// buttons.
func updateText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		slog.Error("Failed to update prompt", "error", err)
	}
}

func followupError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	slog.Error("Ticket action failed", "error", err)
	_, sendErr := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: MsgGenericError,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if sendErr != nil {
		slog.Error("Failed to send followup", "error", sendErr)
	}
}
