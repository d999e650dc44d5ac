package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() MatchSubmission {
	return MatchSubmission{
		Date:  time.Date(2024, 4, 5, 19, 0, 0, 0, time.UTC),
		TeamA: TeamDetails{PlayerIDs: []string{"p1", "p2"}, Score: 10},
		TeamB: TeamDetails{PlayerIDs: []string{"p3", "p4", "p5"}, Score: 6},
		PlayerStats: []PlayerMatchStats{
			{PlayerID: "p1", Goals: 5, Checks: 1},
			{PlayerID: "p2", Goals: 4, AutoGoals: 1},
			{PlayerID: "p3", Goals: 2},
			{PlayerID: "p4", Goals: 2, AutoGoals: 1},
			{PlayerID: "p5", Goals: 1},
		},
	}
}

func issues(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
	return verr.Issues
}

func TestValidateSubmission(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		assert.NoError(t, ValidateSubmission(validSubmission(), testRoster()))
	})

	t.Run("custom max score", func(t *testing.T) {
		sub := validSubmission()
		sub.MaxScore = 6
		sub.TeamA.Score = 4
		sub.PlayerStats[0].Goals = 1
		sub.PlayerStats[1].Goals = 2
		sub.PlayerStats[2].Goals = 3
		// Team B: 3+2+1 goals plus p2's auto goal is 7, above its score.
		require.Error(t, ValidateSubmission(sub, testRoster()))

		sub.PlayerStats[2].Goals = 2
		assert.NoError(t, ValidateSubmission(sub, testRoster()))
	})

	t.Run("draw", func(t *testing.T) {
		sub := validSubmission()
		sub.TeamB.Score = 10
		assert.Contains(t, issues(t, ValidateSubmission(sub, testRoster())), "draws cannot be recorded")
	})

	t.Run("nobody reached max score", func(t *testing.T) {
		sub := validSubmission()
		sub.TeamA.Score = 9
		sub.PlayerStats[0].Goals = 4
		assert.Contains(t, issues(t, ValidateSubmission(sub, testRoster())), "one team must reach the max score of 10")
	})

	t.Run("score does not match goals", func(t *testing.T) {
		sub := validSubmission()
		sub.PlayerStats[0].Goals = 3
		got := issues(t, ValidateSubmission(sub, testRoster()))
		require.Len(t, got, 1)
		assert.Contains(t, got[0], "team A score 10")
	})

	t.Run("team composition", func(t *testing.T) {
		sub := validSubmission()
		sub.TeamA.PlayerIDs = []string{"p1"}
		sub.TeamB.PlayerIDs = []string{"p1", "p3", "x"}
		got := issues(t, ValidateSubmission(sub, testRoster()))
		assert.Contains(t, got, "team A must have 2 or 3 players, got 1")
		assert.Contains(t, got, `player "p1" is on both teams`)
		assert.Contains(t, got, `team B: unknown player "x"`)
	})

	t.Run("stats coverage", func(t *testing.T) {
		sub := validSubmission()
		sub.PlayerStats = sub.PlayerStats[:4]
		sub.PlayerStats = append(sub.PlayerStats, PlayerMatchStats{PlayerID: "p1"})
		got := issues(t, ValidateSubmission(sub, testRoster()))
		assert.Contains(t, got, `stats for player "p1" given twice`)
		assert.Contains(t, got, `missing stats for player "p5"`)
	})

	t.Run("negative numbers and bad max score", func(t *testing.T) {
		sub := validSubmission()
		sub.MaxScore = 11
		sub.PlayerStats[4].Checks = -1
		got := issues(t, ValidateSubmission(sub, testRoster()))
		assert.Contains(t, got, "max score must be between 1 and 10, got 11")
		assert.Contains(t, got, `player "p5": goals, auto goals and checks cannot be negative`)
	})
}

func TestBuildMatch(t *testing.T) {
	sub := validSubmission()
	m := BuildMatch(sub)

	assert.Empty(t, m.ID)
	assert.Equal(t, sub.Date, m.Date)
	assert.Equal(t, []string{"p1", "p2"}, m.WinningTeamIDs)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, m.ParticipantIDs())

	sub.TeamA.Score, sub.TeamB.Score = 3, 10
	assert.Equal(t, []string{"p3", "p4", "p5"}, BuildMatch(sub).WinningTeamIDs)
}
