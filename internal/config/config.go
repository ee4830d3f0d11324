package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// HTTP keep-alive/metrics sidecar
	Port int `validate:"gt=0,lt=65536"`

	// Logging
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// Discord
	DiscordToken     string `validate:"required"`
	DiscordAppID     string `validate:"required"`
	GuildID          string
	TicketCategoryID string
	// StaffRoleIDs are the role IDs allowed to manage tickets
	// (owner, moderator, staff in the server's role setup).
	StaffRoleIDs []string `validate:"min=1"`

	// Tickets
	TicketPrefix   string        `validate:"required"`
	ConfirmTimeout time.Duration `validate:"gt=0"`

	// Selection sessions
	SessionTTL      time.Duration `validate:"gt=0"`
	MaxOpenSessions int           `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		Environment:      getEnv("ENVIRONMENT", "dev"),
		Version:          getEnv("VERSION", "dev"),
		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:     getEnv("DISCORD_APP_ID", ""),
		GuildID:          getEnv("GUILD_ID", ""),
		TicketCategoryID: getEnv("TICKET_CATEGORY_ID", ""),
		StaffRoleIDs:     splitList(getEnv("STAFF_ROLE_IDS", "")),
		TicketPrefix:     getEnv("TICKET_PREFIX", DefaultTicketPrefix),
		ConfirmTimeout:   getEnvAsDuration("CONFIRM_TIMEOUT", DefaultConfirmTimeout),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		MaxOpenSessions:  getEnvAsInt("MAX_OPEN_SESSIONS", DefaultMaxOpenSessions),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves a duration environment variable (e.g. "25s",
// "15m") or returns a default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// splitList splits a comma-separated env value, dropping empty items
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
