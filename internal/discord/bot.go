// Package discord is the presentation layer: the service panel, the
// four order flows, and the ticket controls, all driven by slash
// command, component, and modal interactions.
package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session    *discordgo.Session
	AppID      string
	GuildID    string
	Registry   *CommandRegistry
	Components *ComponentRegistry

	ready atomic.Bool
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:    s,
		AppID:      cfg.AppID,
		GuildID:    cfg.GuildID,
		Registry:   NewCommandRegistry(),
		Components: NewComponentRegistry(),
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.onReady)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.onDisconnect)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

// Ready reports whether the gateway connection is up.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	b.ready.Store(true)
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	b.ready.Store(false)
	slog.Warn("Gateway disconnected")
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if b.Registry != nil {
			b.Registry.Handle(s, i)
		}
	case discordgo.InteractionMessageComponent, discordgo.InteractionModalSubmit:
		if b.Components != nil {
			b.Components.Handle(s, i)
		}
	}
}
