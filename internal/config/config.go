package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/puckpal/internal/scheduler"
)

const (
	defaultPort         = "8080"
	defaultStoreTimeout = 15 * time.Second
	defaultRosterFile   = "roster.yaml"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}
	cfg, err := FromLookup(os.LookupEnv)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	return cfg
}

// FromLookup builds a Config from lookup, which has the signature of
// os.LookupEnv. Only DB_NAME is required.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	var missing []string
	getEnv := func(key string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	getEnvDefault := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName: getEnv("DB_NAME"),
		Port:   getEnvDefault("PORT", defaultPort),
		Slack: SlackConfig{
			Token:         getEnvDefault("SLACK_BOT_TOKEN", ""),
			ChannelID:     getEnvDefault("SLACK_CHANNEL_ID", ""),
			SigningSecret: getEnvDefault("SLACK_SIGNING_SECRET", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnvDefault("GEMINI_API_KEY", ""),
			Model:  getEnvDefault("GEMINI_MODEL", ""),
		},
		ProjectID:       getEnvDefault("GCP_PROJECT", ""),
		StoreTimeout:    defaultStoreTimeout,
		LeaderboardCron: getEnvDefault("LEADERBOARD_CRON", scheduler.DefaultLeaderboardCron),
		RosterFile:      getEnvDefault("ROSTER_FILE", defaultRosterFile),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %v", missing)
	}

	if raw := getEnvDefault("STORE_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid STORE_TIMEOUT %q: want a positive duration like 15s", raw)
		}
		cfg.StoreTimeout = d
	}
	return cfg, nil
}
