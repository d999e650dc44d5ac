package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCombinationStats(t *testing.T) {
	roster := testRoster()
	matches := []Match{
		{
			ID:             "m1",
			TeamA:          TeamDetails{PlayerIDs: []string{"p1", "p2"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"p3", "p4", "p5"}, Score: 4},
			WinningTeamIDs: []string{"p1", "p2"},
		},
		{
			// Same line-ups recorded the other way round.
			ID:             "m2",
			TeamA:          TeamDetails{PlayerIDs: []string{"p5", "p3", "p4"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"p2", "p1"}, Score: 8},
			WinningTeamIDs: []string{"p5", "p3", "p4"},
		},
		{
			ID:             "m3",
			TeamA:          TeamDetails{PlayerIDs: []string{"p1", "p2"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"p3", "p4", "p5"}, Score: 2},
			WinningTeamIDs: []string{"p1", "p2"},
		},
		{
			ID:             "m4",
			TeamA:          TeamDetails{PlayerIDs: []string{"p4", "p5"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"p1", "p2", "p3"}, Score: 5},
			WinningTeamIDs: []string{"p4", "p5"},
		},
		{
			// Line-up that is not a 2 vs 3 split of this roster.
			ID:             "m5",
			TeamA:          TeamDetails{PlayerIDs: []string{"p1", "p2", "p3"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"p4", "x"}, Score: 1},
			WinningTeamIDs: []string{"p1", "p2", "p3"},
		},
	}

	out := TeamCombinationStats(roster, matches)
	require.Len(t, out, 10)

	byMatchup := make(map[string]CombinationStats, len(out))
	for _, cs := range out {
		byMatchup[cs.MatchupID] = cs
	}

	last := byMatchup["matchup-9-p4p5-p1p2p3"]
	assert.Equal(t, 1, last.TeamAWins)
	assert.Equal(t, 0, last.TeamBWins)
	assert.Equal(t, 1.0, last.TeamAWinLossRatio)

	first := byMatchup["matchup-0-p1p2-p3p4p5"]
	assert.Equal(t, "Team Alice & Bob", first.TeamAName)
	assert.Equal(t, 3, first.TeamAGamesPlayed)
	assert.Equal(t, 2, first.TeamAWins)
	assert.Equal(t, 1, first.TeamALosses)
	assert.Equal(t, 1, first.TeamBWins)
	assert.Equal(t, 2, first.TeamBLosses)
	assert.Equal(t, 0.67, first.TeamAWinLossRatio)
	assert.Equal(t, 0.33, first.TeamBWinLossRatio)

	// Matchups that have been played rank above those that have not.
	for _, cs := range out[:2] {
		assert.NotZero(t, cs.TeamAGamesPlayed, cs.MatchupID)
	}
	for _, cs := range out[2:] {
		assert.Zero(t, cs.TeamAGamesPlayed, cs.MatchupID)
	}
}

func TestTeamCombinationStats_NeedsFivePlayers(t *testing.T) {
	assert.Empty(t, TeamCombinationStats(testRoster()[:4], nil))
}
