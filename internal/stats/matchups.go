package stats

import (
	"fmt"
	"strings"
)

// Combinations returns every k-subset of the indices 0..n-1 in lexicographic
// order. k <= 0 yields a single empty subset; k > n yields none.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	current := make([]int, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(current) == k {
			out = append(out, append([]int{}, current...))
			return
		}
		// Not enough indices left to fill the subset.
		for i := start; i <= n-(k-len(current)); i++ {
			current = append(current, i)
			walk(i + 1)
			current = current[:len(current)-1]
		}
	}
	walk(0)
	return out
}

// GenerateMatchups enumerates every split of roster into a team of sizeA and
// a team of sizeB. Team A walks the sizeA-subsets in lexicographic index
// order, team B is the complement in roster order. Any roster whose length
// is not sizeA+sizeB, or a non-positive size, yields an empty slice.
func GenerateMatchups(roster []Player, sizeA, sizeB int) []GeneratedMatchup {
	if sizeA <= 0 || sizeB <= 0 || len(roster) != sizeA+sizeB {
		return []GeneratedMatchup{}
	}

	subsets := Combinations(len(roster), sizeA)
	matchups := make([]GeneratedMatchup, 0, len(subsets))
	for index, subset := range subsets {
		inA := make(map[int]bool, len(subset))
		for _, i := range subset {
			inA[i] = true
		}

		teamA := make([]Player, 0, sizeA)
		teamB := make([]Player, 0, sizeB)
		for i, p := range roster {
			if inA[i] {
				teamA = append(teamA, p)
			} else {
				teamB = append(teamB, p)
			}
		}

		matchups = append(matchups, GeneratedMatchup{
			ID:    fmt.Sprintf("matchup-%d-%s-%s", index, joinIDs(teamA), joinIDs(teamB)),
			TeamA: MatchupTeam{Name: teamName(teamA), Players: teamA},
			TeamB: MatchupTeam{Name: teamName(teamB), Players: teamB},
		})
	}
	return matchups
}

func joinIDs(players []Player) string {
	var b strings.Builder
	for _, p := range players {
		b.WriteString(p.ID)
	}
	return b.String()
}

func teamName(players []Player) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return "Team " + strings.Join(names, " & ")
}
