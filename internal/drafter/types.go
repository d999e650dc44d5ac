package drafter

import (
	"errors"

	"google.golang.org/genai"
)

var (
	// ErrEmptyResponse is returned when the model answers without content.
	ErrEmptyResponse = errors.New("model returned no content")
	// ErrBadResponse is returned when the model's answer is not the JSON asked for.
	ErrBadResponse = errors.New("model returned malformed content")
)

// PlayerSummary is the part of a player's record the model sees when
// suggesting teams.
type PlayerSummary struct {
	Name         string  `json:"name"`
	TotalGoals   int     `json:"totalGoals"`
	WinLossRatio float64 `json:"winLossRatio"`
	GamesPlayed  int     `json:"gamesPlayed"`
}

// TeamSuggestion is a proposed split of the players into two teams.
type TeamSuggestion struct {
	TeamA     []string `json:"teamA"`
	TeamB     []string `json:"teamB"`
	Reasoning string   `json:"reasoning"`
}

const temperature = 0.7

// Client drafts through the Gemini API.
type Client struct {
	models *genai.Models
	model  string
}
