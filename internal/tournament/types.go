package tournament

import (
	"database/sql"
	"time"
)

// Status is the lifecycle state of a whole tournament.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ItemStatus is the state of a single scheduled game.
type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemCompleted ItemStatus = "completed"
)

// Type is the tournament format.
type Type string

const (
	TypeRoundRobin        Type = "round-robin-league"
	TypeSingleElimination Type = "single-elimination-bracket"
)

const minScoringSystemLength = 5

// Valid reports whether t is a known format.
func (t Type) Valid() bool {
	return t == TypeRoundRobin || t == TypeSingleElimination
}

// ScheduleItem is one game of a tournament. Participants holds either no
// names or exactly two.
type ScheduleItem struct {
	ID           string     `json:"id" msgpack:"id"`
	Round        int        `json:"round,omitempty" msgpack:"round,omitempty"`
	Match        string     `json:"match" msgpack:"match"`
	Participants []string   `json:"participants" msgpack:"participants"`
	Status       ItemStatus `json:"status" msgpack:"status"`
	Winner       string     `json:"winner,omitempty" msgpack:"winner,omitempty"`
	Notes        string     `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

// Tournament is a stored tournament document.
type Tournament struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"tournament_name"`
	Slug                 string         `json:"slug"`
	Description          string         `json:"description,omitempty"`
	PlayerNames          []string       `json:"player_names"`
	Type                 Type           `json:"tournament_type"`
	ScoringSystem        string         `json:"scoring_system"`
	Schedule             []ScheduleItem `json:"schedule"`
	StandingsExplanation string         `json:"standings_explanation,omitempty"`
	AdvancementRules     string         `json:"advancement_rules,omitempty"`
	TieBreakingRules     string         `json:"tie_breaking_rules,omitempty"`
	OverallStatus        Status         `json:"overall_status"`
	CreatedAt            time.Time      `json:"created_at"`
}

// PlayerScore is one row of a tournament standings table.
type PlayerScore struct {
	Name          string `json:"name"`
	Points        int    `json:"points"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	MatchesPlayed int    `json:"matches_played"`
}

// DraftInput is what a user provides to have a tournament drafted.
type DraftInput struct {
	PlayerNames   []string `json:"player_names"`
	Type          Type     `json:"tournament_type"`
	ScoringSystem string   `json:"scoring_system"`
}

// Draft is a proposed tournament as returned by a drafter. Its schedule ids
// and statuses are not trusted.
type Draft struct {
	TournamentName       string         `json:"tournamentName"`
	Description          string         `json:"description,omitempty"`
	Schedule             []ScheduleItem `json:"schedule"`
	StandingsExplanation string         `json:"standingsExplanation,omitempty"`
	AdvancementRules     string         `json:"advancementRules,omitempty"`
	TieBreakingRules     string         `json:"tieBreakingRules,omitempty"`
}

// store persists tournaments in the shared SQL database.
type store struct {
	db *sql.DB
}
