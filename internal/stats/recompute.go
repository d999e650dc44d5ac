package stats

import (
	"cmp"
	"math"
	"slices"
)

type accumulator struct {
	goals, autoGoals, checks int
	wins, losses, points     int
	gamesPlayed              int
	scored, conceded         int
}

// Recompute derives every roster player's statistics from the full match
// list. It never mutates its inputs and always returns one entry per roster
// player, in roster order. Player ids that appear in matches but not in the
// roster are ignored.
func Recompute(roster []Player, matches []Match) []Player {
	acc := make(map[string]*accumulator, len(roster))
	for _, p := range roster {
		acc[p.ID] = &accumulator{}
	}

	for _, match := range matches {
		winners := make(map[string]struct{}, len(match.WinningTeamIDs))
		for _, id := range match.WinningTeamIDs {
			winners[id] = struct{}{}
		}

		sides := []struct {
			team     TeamDetails
			opponent TeamDetails
		}{
			{match.TeamA, match.TeamB},
			{match.TeamB, match.TeamA},
		}
		for _, side := range sides {
			for _, id := range side.team.PlayerIDs {
				a, ok := acc[id]
				if !ok {
					continue
				}
				a.gamesPlayed++
				a.scored += side.team.Score
				a.conceded += side.opponent.Score
				if _, won := winners[id]; won {
					a.wins++
					a.points += PointsPerWin
				} else {
					a.losses++
					a.points += PointsPerLoss
				}
			}
		}

		for _, ps := range match.PlayerStats {
			if a, ok := acc[ps.PlayerID]; ok {
				a.goals += ps.Goals
				a.autoGoals += ps.AutoGoals
				a.checks += ps.Checks
			}
		}
	}

	out := make([]Player, len(roster))
	for i, p := range roster {
		a := acc[p.ID]
		out[i] = Player{
			ID:                 p.ID,
			Name:               p.Name,
			TotalGoals:         a.goals,
			TotalAutoGoals:     a.autoGoals,
			TotalChecks:        a.checks,
			Wins:               a.wins,
			Losses:             a.losses,
			TotalPoints:        a.points,
			GamesPlayed:        a.gamesPlayed,
			WinLossRatio:       WinLossRatio(a.wins, a.gamesPlayed),
			TeamGoalsScored:    a.scored,
			TeamGoalsConceded:  a.conceded,
			TeamGoalDifference: a.scored - a.conceded,
		}
	}
	return out
}

// WinLossRatio returns wins/gamesPlayed rounded to two decimals, or 0 when no
// games were played.
func WinLossRatio(wins, gamesPlayed int) float64 {
	if gamesPlayed == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(gamesPlayed)*100) / 100
}

// SortLeaderboard orders players for the season table: points, then ratio,
// then goals, then team goal difference, all descending.
func SortLeaderboard(players []Player) []Player {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b Player) int {
		if c := cmp.Compare(b.TotalPoints, a.TotalPoints); c != 0 {
			return c
		}
		if c := cmp.Compare(b.WinLossRatio, a.WinLossRatio); c != 0 {
			return c
		}
		if c := cmp.Compare(b.TotalGoals, a.TotalGoals); c != 0 {
			return c
		}
		return cmp.Compare(b.TeamGoalDifference, a.TeamGoalDifference)
	})
	return sorted
}
