package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/ticket"
)

const ticketPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// historyPageSize is the platform's per-request message fetch limit.
const historyPageSize = 100

// dmFileThreshold is where a transcript stops fitting in a plain
// message and gets attached as a file instead.
const dmFileThreshold = 1900

// platformAdapter implements the ticket coordinator's platform boundary
// on top of a Discord session.
type platformAdapter struct {
	session      *discordgo.Session
	guildID      string
	categoryID   string
	staffRoleIDs []string
}

// NewPlatform adapts a Discord session to the ticket platform boundary.
// Tickets are created under categoryID with access for the owner and
// the staff roles only.
func NewPlatform(session *discordgo.Session, guildID, categoryID string, staffRoleIDs []string) ticket.Platform {
	return &platformAdapter{
		session:      session,
		guildID:      guildID,
		categoryID:   categoryID,
		staffRoleIDs: staffRoleIDs,
	}
}

func (p *platformAdapter) CreatePrivateChannel(_ context.Context, owner domain.Actor, name string) (string, error) {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			// @everyone shares its ID with the guild.
			ID:   p.guildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: ticketPermissions,
		},
		{
			ID:    owner.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketPermissions,
		},
	}
	for _, roleID := range p.staffRoleIDs {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    roleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: ticketPermissions,
		})
	}

	channel, err := p.session.GuildChannelCreateComplex(p.guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             p.categoryID,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		return "", fmt.Errorf("create channel %q: %w", name, err)
	}
	return channel.ID, nil
}

func (p *platformAdapter) GrantAccess(_ context.Context, channelID, userID string) error {
	return p.session.ChannelPermissionSet(channelID, userID,
		discordgo.PermissionOverwriteTypeMember, ticketPermissions, 0)
}

func (p *platformAdapter) RevokeAccess(_ context.Context, channelID, userID string) error {
	return p.session.ChannelPermissionSet(channelID, userID,
		discordgo.PermissionOverwriteTypeMember, 0, ticketPermissions)
}

func (p *platformAdapter) RenameChannel(_ context.Context, channelID, name string) error {
	_, err := p.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name})
	return err
}

func (p *platformAdapter) DeleteChannel(_ context.Context, channelID string) error {
	_, err := p.session.ChannelDelete(channelID)
	return err
}

func (p *platformAdapter) FetchHistory(_ context.Context, channelID string) ([]domain.TranscriptMessage, error) {
	var all []*discordgo.Message
	beforeID := ""
	for {
		page, err := p.session.ChannelMessages(channelID, historyPageSize, beforeID, "", "")
		if err != nil {
			return nil, fmt.Errorf("fetch messages: %w", err)
		}
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		beforeID = page[len(page)-1].ID
		if len(page) < historyPageSize {
			break
		}
	}

	// The API returns newest first; transcripts read oldest first.
	history := make([]domain.TranscriptMessage, 0, len(all))
	for idx := len(all) - 1; idx >= 0; idx-- {
		msg := all[idx]
		history = append(history, domain.TranscriptMessage{
			Timestamp: msg.Timestamp,
			Author:    msg.Author.Username,
			Content:   msg.Content,
		})
	}
	return history, nil
}

func (p *platformAdapter) SendDirectMessage(_ context.Context, userID, content string) error {
	channel, err := p.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open dm: %w", err)
	}

	if len(content) > dmFileThreshold {
		_, err = p.session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
			Content: "Here is your ticket transcript:",
			Files: []*discordgo.File{{
				Name:        "transcript.txt",
				ContentType: "text/plain",
				Reader:      strings.NewReader(content),
			}},
		})
	} else {
		_, err = p.session.ChannelMessageSend(channel.ID, content)
	}
	if err != nil {
		return fmt.Errorf("send dm: %w", err)
	}
	return nil
}
