package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/catalog"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/logger"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/ticket"
)

// Handlers wires the order flows and ticket controls to the services
// behind them.
type Handlers struct {
	catalogs   *catalog.Store
	sessions   *selection.Store
	tickets    ticket.Service
	staffRoles map[string]struct{}
}

// NewHandlers creates the interaction handler set.
func NewHandlers(catalogs *catalog.Store, sessions *selection.Store, tickets ticket.Service, staffRoleIDs []string) *Handlers {
	staff := make(map[string]struct{}, len(staffRoleIDs))
	for _, id := range staffRoleIDs {
		staff[id] = struct{}{}
	}
	return &Handlers{
		catalogs:   catalogs,
		sessions:   sessions,
		tickets:    tickets,
		staffRoles: staff,
	}
}

// Bind registers the panel command and every component route on the bot.
func (h *Handlers) Bind(b *Bot) {
	cmd, handler := h.PanelCommand()
	b.Registry.Register(cmd, handler)

	c := b.Components
	c.Register("flow", h.handleFlowButton)

	c.Register("bosscat", h.handleBossCategory)
	c.Register("bossentry", h.handleBossEntry)
	c.Register("bossqty", h.handleBossQuantity)

	c.Register("lvlskill", h.handleSkillSelect)
	c.Register("lvlentry", h.handleBracketSelect)
	c.Register("lvlxp", h.handleXPModal)
	c.Register("lvlcreate", h.handleLevelingCreate)

	c.Register("minientry", h.handleMinigameSelect)
	c.Register("miniqty", h.handleMinigameQuantity)

	c.Register("questrsn", h.handleQuestRSN)
	c.Register("questpage", h.handleQuestPage)
	c.Register("questnav", h.handleQuestNav)
	c.Register("questconfirm", h.handleQuestConfirm)

	c.Register("tclose", h.handleTicketClose)
	c.Register("tcloseok", h.handleTicketCloseConfirm)
	c.Register("treopen", h.handleTicketReopen)
	c.Register("tdelete", h.handleTicketDelete)
	c.Register("tdeleteok", h.handleTicketDeleteConfirm)
	c.Register("ttranscript", h.handleTicketTranscript)
}

// actor builds the acting user from the interaction, marking staff when
// the member holds any configured staff role.
func (h *Handlers) actor(i *discordgo.InteractionCreate) domain.Actor {
	var u *discordgo.User
	staff := false
	if i.Member != nil {
		u = i.Member.User
		for _, role := range i.Member.Roles {
			if _, ok := h.staffRoles[role]; ok {
				staff = true
				break
			}
		}
	} else {
		u = i.User
	}
	return domain.Actor{ID: u.ID, Username: u.Username, Staff: staff}
}

func requestContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string, components ...discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		},
	})
	if err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

func respondEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		},
	})
	if err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

// updateView edits the message the component lives on in place.
func updateView(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components ...discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		slog.Error("Failed to update view", "error", err)
	}
}

type textInput struct {
	customID    string
	label       string
	placeholder string
}

func respondModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID, title string, inputs ...textInput) {
	components := make([]discordgo.MessageComponent, 0, len(inputs))
	for _, in := range inputs {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    in.customID,
					Label:       in.label,
					Placeholder: in.placeholder,
					Style:       discordgo.TextInputShort,
					Required:    true,
				},
			},
		})
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: components,
		},
	})
	if err != nil {
		slog.Error("Failed to open modal", "error", err)
	}
}

// modalValue pulls a submitted text input's value out of the modal data.
func modalValue(i *discordgo.InteractionCreate, customID string) string {
	for _, row := range i.ModalSubmitData().Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

// respondError maps a domain error to the friendly message the user
// should see.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	switch {
	case errors.Is(err, domain.ErrParse):
		respondEphemeral(s, i, MsgBadNumber)
	case errors.Is(err, domain.ErrInvalidRange):
		respondEphemeral(s, i, MsgBadXPRange)
	case errors.Is(err, domain.ErrNotFound):
		respondEphemeral(s, i, MsgNoPricingData)
	case errors.Is(err, domain.ErrEmptySelection):
		respondEphemeral(s, i, MsgEmptySelection)
	case errors.Is(err, domain.ErrSessionNotFound):
		respondEphemeral(s, i, MsgSessionExpired)
	case errors.Is(err, domain.ErrUnauthorized):
		respondEphemeral(s, i, MsgNotAllowed)
	case errors.Is(err, domain.ErrConfirmationExpired):
		respondEphemeral(s, i, MsgConfirmExpired)
	default:
		slog.Error("Interaction failed", "error", err)
		respondEphemeral(s, i, MsgGenericError)
	}
}
