package tournament

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mauv0809/puckpal/internal/stats"
)

var versusPattern = regexp.MustCompile(`(?i)\s+vs\.?\s+`)

// ParseParticipants splits free match text such as "Alice vs. Bob" into the
// two names. ok is false unless there are exactly two non-empty sides.
func ParseParticipants(match string) (first, second string, ok bool) {
	parts := versusPattern.Split(match, -1)
	if len(parts) != 2 {
		return "", "", false
	}
	first, second = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if first == "" || second == "" {
		return "", "", false
	}
	return first, second, true
}

// ComputeStandings builds the standings table for playerNames from the
// completed games in schedule. A winner earns 2 points and the loser 1. When
// the loser cannot be worked out the winner is still credited. Names that
// are not in playerNames never score. Rows are ordered by points, then wins,
// then playerNames order.
func ComputeStandings(playerNames []string, schedule []ScheduleItem) []PlayerScore {
	index := make(map[string]*PlayerScore, len(playerNames))
	order := make([]string, 0, len(playerNames))
	for _, name := range playerNames {
		if _, dup := index[name]; dup {
			continue
		}
		index[name] = &PlayerScore{Name: name}
		order = append(order, name)
	}

	for _, item := range schedule {
		if item.Status != ItemCompleted || item.Winner == "" {
			continue
		}
		winner, ok := index[item.Winner]
		if !ok {
			continue
		}
		winner.Points += stats.PointsPerWin
		winner.Wins++
		winner.MatchesPlayed++

		if name := loserName(item, index); name != "" {
			loser := index[name]
			loser.Points += stats.PointsPerLoss
			loser.Losses++
			loser.MatchesPlayed++
		}
	}

	standings := make([]PlayerScore, 0, len(order))
	for _, name := range order {
		standings = append(standings, *index[name])
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].Wins > standings[j].Wins
	})
	return standings
}

// loserName returns the opponent of item's winner, or "" when it is unknown.
// An explicit participant pair takes precedence over the match text.
func loserName(item ScheduleItem, known map[string]*PlayerScore) string {
	var first, second string
	if len(item.Participants) == 2 {
		first, second = item.Participants[0], item.Participants[1]
	} else {
		var ok bool
		if first, second, ok = ParseParticipants(item.Match); !ok {
			return ""
		}
	}

	var other string
	switch item.Winner {
	case first:
		other = second
	case second:
		other = first
	default:
		return ""
	}
	if _, ok := known[other]; !ok || other == item.Winner {
		return ""
	}
	return other
}
