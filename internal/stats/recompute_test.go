package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []Player {
	return []Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Carol"},
		{ID: "p4", Name: "Dave"},
		{ID: "p5", Name: "Eve"},
	}
}

func testMatches() []Match {
	return []Match{
		{
			ID:             "m1",
			Date:           time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
			TeamA:          TeamDetails{PlayerIDs: []string{"p1", "p2"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"p3", "p4", "p5"}, Score: 7},
			WinningTeamIDs: []string{"p1", "p2"},
			PlayerStats: []PlayerMatchStats{
				{PlayerID: "p1", Goals: 6, Checks: 2},
				{PlayerID: "p2", Goals: 4},
				{PlayerID: "p3", Goals: 3, AutoGoals: 0},
				{PlayerID: "p4", Goals: 2, Checks: 1},
				{PlayerID: "p5", Goals: 2},
			},
		},
		{
			ID:             "m2",
			Date:           time.Date(2024, 3, 8, 18, 0, 0, 0, time.UTC),
			TeamA:          TeamDetails{PlayerIDs: []string{"p1", "p3"}, Score: 4},
			TeamB:          TeamDetails{PlayerIDs: []string{"p2", "p4", "p5"}, Score: 10},
			WinningTeamIDs: []string{"p2", "p4", "p5"},
			PlayerStats: []PlayerMatchStats{
				{PlayerID: "p1", Goals: 3},
				{PlayerID: "p3", Goals: 1, AutoGoals: 1},
				{PlayerID: "p2", Goals: 5},
				{PlayerID: "p4", Goals: 2},
				{PlayerID: "p5", Goals: 2},
			},
		},
		{
			ID:             "m3",
			Date:           time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC),
			TeamA:          TeamDetails{PlayerIDs: []string{"p4", "p5"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"p1", "p2", "p3"}, Score: 9},
			WinningTeamIDs: []string{"p4", "p5"},
			PlayerStats: []PlayerMatchStats{
				{PlayerID: "p4", Goals: 5},
				{PlayerID: "p5", Goals: 5},
				{PlayerID: "p1", Goals: 4},
				{PlayerID: "p2", Goals: 4},
				{PlayerID: "p3", Goals: 1},
			},
		},
	}
}

func byID(players []Player) map[string]Player {
	m := make(map[string]Player, len(players))
	for _, p := range players {
		m[p.ID] = p
	}
	return m
}

func TestRecompute(t *testing.T) {
	t.Run("two player scenario", func(t *testing.T) {
		roster := []Player{{ID: "a", Name: "Alice"}, {ID: "b", Name: "Bob"}}
		matches := []Match{{
			ID:             "m1",
			TeamA:          TeamDetails{PlayerIDs: []string{"a"}, Score: 10},
			TeamB:          TeamDetails{PlayerIDs: []string{"b"}, Score: 7},
			WinningTeamIDs: []string{"a"},
			PlayerStats: []PlayerMatchStats{
				{PlayerID: "a", Goals: 5, AutoGoals: 1, Checks: 2},
				{PlayerID: "b", Goals: 3},
			},
		}}

		out := Recompute(roster, matches)

		require.Len(t, out, 2)
		alice, bob := out[0], out[1]
		assert.Equal(t, "a", alice.ID)
		assert.Equal(t, 1, alice.Wins)
		assert.Equal(t, 0, alice.Losses)
		assert.Equal(t, 2, alice.TotalPoints)
		assert.Equal(t, 1, alice.GamesPlayed)
		assert.Equal(t, 5, alice.TotalGoals)
		assert.Equal(t, 1, alice.TotalAutoGoals)
		assert.Equal(t, 2, alice.TotalChecks)
		assert.Equal(t, 10, alice.TeamGoalsScored)
		assert.Equal(t, 7, alice.TeamGoalsConceded)
		assert.Equal(t, 3, alice.TeamGoalDifference)
		assert.Equal(t, 1.0, alice.WinLossRatio)

		assert.Equal(t, 0, bob.Wins)
		assert.Equal(t, 1, bob.Losses)
		assert.Equal(t, 1, bob.TotalPoints)
		assert.Equal(t, 3, bob.TotalGoals)
		assert.Equal(t, -3, bob.TeamGoalDifference)
		assert.Equal(t, 0.0, bob.WinLossRatio)
	})

	t.Run("single five player match", func(t *testing.T) {
		out := byID(Recompute(testRoster(), testMatches()[:1]))

		alice, carol := out["p1"], out["p3"]
		assert.Equal(t, 1, alice.Wins)
		assert.Equal(t, 1, alice.GamesPlayed)
		assert.Equal(t, 2, alice.TotalPoints)
		assert.Equal(t, 10, alice.TeamGoalsScored)
		assert.Equal(t, 7, alice.TeamGoalsConceded)
		assert.Equal(t, 3, alice.TeamGoalDifference)
		assert.Equal(t, 1, carol.Losses)
		assert.Equal(t, 1, carol.TotalPoints)
	})

	t.Run("is idempotent and keeps roster order", func(t *testing.T) {
		roster := testRoster()
		first := Recompute(roster, testMatches())
		second := Recompute(first, testMatches())

		assert.Equal(t, first, second)
		for i, p := range first {
			assert.Equal(t, roster[i].ID, p.ID)
		}
	})

	t.Run("does not depend on match order", func(t *testing.T) {
		matches := testMatches()
		reversed := []Match{matches[2], matches[1], matches[0]}

		assert.Equal(t, Recompute(testRoster(), matches), Recompute(testRoster(), reversed))
	})

	t.Run("deleting a match equals recomputing without it", func(t *testing.T) {
		matches := testMatches()
		without := []Match{matches[0], matches[2]}

		afterDelete := Recompute(Recompute(testRoster(), matches), without)

		assert.Equal(t, Recompute(testRoster(), without), afterDelete)
	})

	t.Run("conserves games and separates wins from losses", func(t *testing.T) {
		matches := testMatches()
		out := Recompute(testRoster(), matches)

		participants := 0
		for _, m := range matches {
			participants += len(m.TeamA.PlayerIDs) + len(m.TeamB.PlayerIDs)
		}
		games := 0
		for _, p := range out {
			games += p.GamesPlayed
			assert.Equal(t, p.GamesPlayed, p.Wins+p.Losses, p.Name)
			assert.Equal(t, 2*p.Wins+p.Losses, p.TotalPoints, p.Name)
		}
		assert.Equal(t, participants, games)
	})

	t.Run("players without matches get zero stats", func(t *testing.T) {
		roster := append(testRoster(), Player{ID: "p6", Name: "Frank", Wins: 9, TotalGoals: 40})
		out := Recompute(roster, testMatches())

		require.Len(t, out, 6)
		assert.Equal(t, Player{ID: "p6", Name: "Frank"}, out[5])
	})

	t.Run("ignores player ids missing from the roster", func(t *testing.T) {
		matches := testMatches()
		matches[0].TeamA.PlayerIDs = append(matches[0].TeamA.PlayerIDs, "ghost")
		matches[0].PlayerStats = append(matches[0].PlayerStats, PlayerMatchStats{PlayerID: "ghost", Goals: 3})

		out := Recompute(testRoster(), matches)

		assert.Len(t, out, 5)
		assert.Equal(t, Recompute(testRoster(), testMatches()), out)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		roster := testRoster()
		matches := testMatches()
		Recompute(roster, matches)

		assert.Equal(t, testRoster(), roster)
		assert.Equal(t, testMatches(), matches)
	})

	t.Run("aggregates across matches", func(t *testing.T) {
		out := byID(Recompute(testRoster(), testMatches()))

		alice := out["p1"]
		assert.Equal(t, 3, alice.GamesPlayed)
		assert.Equal(t, 1, alice.Wins)
		assert.Equal(t, 2, alice.Losses)
		assert.Equal(t, 4, alice.TotalPoints)
		assert.Equal(t, 13, alice.TotalGoals)
		assert.Equal(t, 2, alice.TotalChecks)
		assert.Equal(t, 0.33, alice.WinLossRatio)
		assert.Equal(t, 10+4+9, alice.TeamGoalsScored)
		assert.Equal(t, 7+10+10, alice.TeamGoalsConceded)
		assert.Equal(t, -4, alice.TeamGoalDifference)
	})
}

func TestWinLossRatio(t *testing.T) {
	assert.Equal(t, 0.0, WinLossRatio(0, 0))
	assert.Equal(t, 0.75, WinLossRatio(3, 4))
	assert.Equal(t, 0.67, WinLossRatio(2, 3))
	assert.Equal(t, 1.0, WinLossRatio(5, 5))
}

func TestSortLeaderboard(t *testing.T) {
	players := []Player{
		{ID: "a", TotalPoints: 6, WinLossRatio: 0.5, TotalGoals: 10, TeamGoalDifference: 2},
		{ID: "b", TotalPoints: 8, WinLossRatio: 0.5},
		{ID: "c", TotalPoints: 6, WinLossRatio: 0.75},
		{ID: "d", TotalPoints: 6, WinLossRatio: 0.5, TotalGoals: 10, TeamGoalDifference: 5},
		{ID: "e", TotalPoints: 6, WinLossRatio: 0.5, TotalGoals: 12},
	}

	sorted := SortLeaderboard(players)

	ids := make([]string, len(sorted))
	for i, p := range sorted {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"b", "c", "e", "d", "a"}, ids)
	assert.Equal(t, "a", players[0].ID, "input should not be reordered")
}
