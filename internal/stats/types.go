package stats

import "time"

// Player is a roster member together with the statistics derived from the
// full match history. The derived fields are only ever written by Recompute.
type Player struct {
	ID                 string  `json:"id" msgpack:"id"`
	Name               string  `json:"name" msgpack:"name"`
	TotalGoals         int     `json:"total_goals" msgpack:"total_goals"`
	TotalAutoGoals     int     `json:"total_auto_goals" msgpack:"total_auto_goals"`
	TotalChecks        int     `json:"total_checks" msgpack:"total_checks"`
	Wins               int     `json:"wins" msgpack:"wins"`
	Losses             int     `json:"losses" msgpack:"losses"`
	TotalPoints        int     `json:"total_points" msgpack:"total_points"`
	GamesPlayed        int     `json:"games_played" msgpack:"games_played"`
	WinLossRatio       float64 `json:"win_loss_ratio" msgpack:"win_loss_ratio"`
	TeamGoalsScored    int     `json:"team_goals_scored" msgpack:"team_goals_scored"`
	TeamGoalsConceded  int     `json:"team_goals_conceded" msgpack:"team_goals_conceded"`
	TeamGoalDifference int     `json:"team_goal_difference" msgpack:"team_goal_difference"`
}

// TeamDetails is one side of a recorded match.
type TeamDetails struct {
	PlayerIDs []string `json:"player_ids" msgpack:"player_ids"`
	Score     int      `json:"score" msgpack:"score"`
}

// PlayerMatchStats holds a single participant's numbers for one match.
// AutoGoals are own goals, credited to the opposing team.
type PlayerMatchStats struct {
	PlayerID  string `json:"player_id" msgpack:"player_id"`
	Goals     int    `json:"goals" msgpack:"goals"`
	AutoGoals int    `json:"auto_goals" msgpack:"auto_goals"`
	Checks    int    `json:"checks" msgpack:"checks"`
}

// Match is a completed game between two teams.
type Match struct {
	ID             string             `json:"id" msgpack:"id"`
	Date           time.Time          `json:"date" msgpack:"date"`
	TeamA          TeamDetails        `json:"team_a" msgpack:"team_a"`
	TeamB          TeamDetails        `json:"team_b" msgpack:"team_b"`
	PlayerStats    []PlayerMatchStats `json:"player_stats" msgpack:"player_stats"`
	WinningTeamIDs []string           `json:"winning_team_ids" msgpack:"winning_team_ids"`
}

// ParticipantIDs returns team A's ids followed by team B's.
func (m Match) ParticipantIDs() []string {
	ids := make([]string, 0, len(m.TeamA.PlayerIDs)+len(m.TeamB.PlayerIDs))
	ids = append(ids, m.TeamA.PlayerIDs...)
	return append(ids, m.TeamB.PlayerIDs...)
}

// MatchupTeam is one side of a generated matchup.
type MatchupTeam struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// PlayerIDs returns the ids of the team's players in order.
func (t MatchupTeam) PlayerIDs() []string {
	ids := make([]string, len(t.Players))
	for i, p := range t.Players {
		ids[i] = p.ID
	}
	return ids
}

// GeneratedMatchup is one candidate split of the roster. It is never stored.
type GeneratedMatchup struct {
	ID    string      `json:"id"`
	TeamA MatchupTeam `json:"team_a"`
	TeamB MatchupTeam `json:"team_b"`
}

// CombinationStats is the head-to-head record of one generated matchup.
type CombinationStats struct {
	MatchupID         string   `json:"matchup_id"`
	TeamAName         string   `json:"team_a_name"`
	TeamAPlayerIDs    []string `json:"team_a_player_ids"`
	TeamAWins         int      `json:"team_a_wins"`
	TeamALosses       int      `json:"team_a_losses"`
	TeamAGamesPlayed  int      `json:"team_a_games_played"`
	TeamAWinLossRatio float64  `json:"team_a_win_loss_ratio"`
	TeamBName         string   `json:"team_b_name"`
	TeamBPlayerIDs    []string `json:"team_b_player_ids"`
	TeamBWins         int      `json:"team_b_wins"`
	TeamBLosses       int      `json:"team_b_losses"`
	TeamBGamesPlayed  int      `json:"team_b_games_played"`
	TeamBWinLossRatio float64  `json:"team_b_win_loss_ratio"`
}

// MatchSubmission is a match as entered by a user, before validation.
type MatchSubmission struct {
	Date        time.Time          `json:"date"`
	MaxScore    int                `json:"max_score"`
	TeamA       TeamDetails        `json:"team_a"`
	TeamB       TeamDetails        `json:"team_b"`
	PlayerStats []PlayerMatchStats `json:"player_stats"`
}

const (
	// PointsPerWin and PointsPerLoss apply to both the season table and tournaments.
	PointsPerWin  = 2
	PointsPerLoss = 1

	// DefaultMaxScore is the score that ends a match when none is chosen.
	DefaultMaxScore = 10
)
