package stats

import (
	"cmp"
	"slices"
)

// TeamCombinationStats reports, for every 2-vs-3 matchup of the roster, how
// the two sides fared when they met with exactly those line-ups. A match
// counts regardless of which side was recorded as team A. The result is
// ordered by the sum of both sides' ratios, highest first.
func TeamCombinationStats(roster []Player, matches []Match) []CombinationStats {
	matchups := GenerateMatchups(roster, 2, 3)
	out := make([]CombinationStats, 0, len(matchups))

	for _, m := range matchups {
		aIDs := m.TeamA.PlayerIDs()
		bIDs := m.TeamB.PlayerIDs()
		cs := CombinationStats{
			MatchupID:      m.ID,
			TeamAName:      m.TeamA.Name,
			TeamAPlayerIDs: aIDs,
			TeamBName:      m.TeamB.Name,
			TeamBPlayerIDs: bIDs,
		}

		for _, match := range matches {
			direct := sameSet(match.TeamA.PlayerIDs, aIDs) && sameSet(match.TeamB.PlayerIDs, bIDs)
			swapped := sameSet(match.TeamA.PlayerIDs, bIDs) && sameSet(match.TeamB.PlayerIDs, aIDs)
			if !direct && !swapped {
				continue
			}
			cs.TeamAGamesPlayed++
			cs.TeamBGamesPlayed++
			if sameSet(match.WinningTeamIDs, aIDs) {
				cs.TeamAWins++
				cs.TeamBLosses++
			} else {
				cs.TeamBWins++
				cs.TeamALosses++
			}
		}

		cs.TeamAWinLossRatio = WinLossRatio(cs.TeamAWins, cs.TeamAGamesPlayed)
		cs.TeamBWinLossRatio = WinLossRatio(cs.TeamBWins, cs.TeamBGamesPlayed)
		out = append(out, cs)
	}

	slices.SortStableFunc(out, func(x, y CombinationStats) int {
		return cmp.Compare(y.TeamAWinLossRatio+y.TeamBWinLossRatio, x.TeamAWinLossRatio+x.TeamBWinLossRatio)
	})
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}
