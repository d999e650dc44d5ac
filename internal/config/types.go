package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName          string
	Port            string
	Slack           SlackConfig
	Turso           TursoConfig
	Gemini          GeminiConfig
	ProjectID       string
	StoreTimeout    time.Duration
	LeaderboardCron string
	RosterFile      string
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}
