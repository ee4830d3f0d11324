package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/catalog"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/config"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/discord"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/logger"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/server"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/ticket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	))

	// Price tables are static; a broken catalog is a deploy error, not
	// something to limp along without.
	catalogs, err := catalog.Load(config.ConfigPathCatalogSchema,
		config.ConfigPathBossing,
		config.ConfigPathLeveling,
		config.ConfigPathMinigames,
		config.ConfigPathQuests,
	)
	if err != nil {
		slog.Error("Failed to load catalogs", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalogs loaded")

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.GuildID,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	sessions := selection.NewStore(cfg.MaxOpenSessions, cfg.SessionTTL)
	platform := discord.NewPlatform(bot.Session, cfg.GuildID, cfg.TicketCategoryID, cfg.StaffRoleIDs)
	tickets := ticket.NewService(platform, cfg.TicketPrefix, cfg.ConfirmTimeout)

	handlers := discord.NewHandlers(catalogs, sessions, tickets, cfg.StaffRoleIDs)
	handlers.Bind(bot)

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// The bot can still run if commands are already registered.
		slog.Error("Failed to register commands", "error", err)
	}

	sidecar := server.NewServer(cfg.Port, cfg.Version, bot)
	go func() {
		if err := sidecar.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Sidecar failed", "error", err)
			os.Exit(1)
		}
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sidecar.Stop(ctx); err != nil {
			slog.Error("Sidecar shutdown failed", "error", err)
		}
	}()

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}
