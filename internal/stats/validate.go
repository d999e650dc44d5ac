package stats

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError lists every problem found in a submission.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid match: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) add(format string, args ...any) {
	e.Issues = append(e.Issues, fmt.Sprintf(format, args...))
}

// EffectiveMaxScore returns the submission's max score, or DefaultMaxScore
// when it was left unset.
func (s MatchSubmission) EffectiveMaxScore() int {
	if s.MaxScore == 0 {
		return DefaultMaxScore
	}
	return s.MaxScore
}

// ValidateSubmission checks a submission against the roster and returns a
// *ValidationError describing every violated rule, or nil.
func ValidateSubmission(sub MatchSubmission, roster []Player) error {
	verr := &ValidationError{}
	maxScore := sub.EffectiveMaxScore()
	if maxScore < 1 || maxScore > DefaultMaxScore {
		verr.add("max score must be between 1 and %d, got %d", DefaultMaxScore, sub.MaxScore)
	}

	known := make(map[string]bool, len(roster))
	for _, p := range roster {
		known[p.ID] = true
	}

	teamOf := make(map[string]string)
	for _, side := range []struct {
		label string
		team  TeamDetails
	}{{"team A", sub.TeamA}, {"team B", sub.TeamB}} {
		if n := len(side.team.PlayerIDs); n < 2 || n > 3 {
			verr.add("%s must have 2 or 3 players, got %d", side.label, n)
		}
		for _, id := range side.team.PlayerIDs {
			if !known[id] {
				verr.add("%s: unknown player %q", side.label, id)
			}
			if prev, dup := teamOf[id]; dup {
				if prev == side.label {
					verr.add("%s: player %q listed twice", side.label, id)
				} else {
					verr.add("player %q is on both teams", id)
				}
				continue
			}
			teamOf[id] = side.label
		}
		if side.team.Score < 0 {
			verr.add("%s score cannot be negative", side.label)
		}
		if side.team.Score > maxScore {
			verr.add("%s score %d exceeds max score %d", side.label, side.team.Score, maxScore)
		}
	}

	switch {
	case sub.TeamA.Score == sub.TeamB.Score:
		verr.add("draws cannot be recorded")
	case sub.TeamA.Score != maxScore && sub.TeamB.Score != maxScore:
		verr.add("one team must reach the max score of %d", maxScore)
	}

	var goalsA, goalsB, autoA, autoB int
	covered := make(map[string]bool, len(sub.PlayerStats))
	for _, ps := range sub.PlayerStats {
		if ps.Goals < 0 || ps.AutoGoals < 0 || ps.Checks < 0 {
			verr.add("player %q: goals, auto goals and checks cannot be negative", ps.PlayerID)
		}
		if ps.Goals > maxScore {
			verr.add("player %q: goals cannot exceed max score %d", ps.PlayerID, maxScore)
		}
		label, ok := teamOf[ps.PlayerID]
		if !ok {
			verr.add("stats for player %q who is not in the match", ps.PlayerID)
			continue
		}
		if covered[ps.PlayerID] {
			verr.add("stats for player %q given twice", ps.PlayerID)
			continue
		}
		covered[ps.PlayerID] = true
		if label == "team A" {
			goalsA += ps.Goals
			autoA += ps.AutoGoals
		} else {
			goalsB += ps.Goals
			autoB += ps.AutoGoals
		}
	}
	for _, id := range slices.Concat(sub.TeamA.PlayerIDs, sub.TeamB.PlayerIDs) {
		if !covered[id] {
			verr.add("missing stats for player %q", id)
			covered[id] = true
		}
	}

	if want := goalsA + autoB; sub.TeamA.Score != want {
		verr.add("team A score %d does not match goals scored (%d) plus opponent auto goals (%d)", sub.TeamA.Score, goalsA, autoB)
	}
	if want := goalsB + autoA; sub.TeamB.Score != want {
		verr.add("team B score %d does not match goals scored (%d) plus opponent auto goals (%d)", sub.TeamB.Score, goalsB, autoA)
	}

	if len(verr.Issues) > 0 {
		return verr
	}
	return nil
}

// BuildMatch turns a validated submission into a Match. The winning side is
// the one with the strictly higher score. The id is left for the store.
func BuildMatch(sub MatchSubmission) Match {
	winners := sub.TeamB.PlayerIDs
	if sub.TeamA.Score > sub.TeamB.Score {
		winners = sub.TeamA.PlayerIDs
	}
	return Match{
		Date:           sub.Date,
		TeamA:          TeamDetails{PlayerIDs: slices.Clone(sub.TeamA.PlayerIDs), Score: sub.TeamA.Score},
		TeamB:          TeamDetails{PlayerIDs: slices.Clone(sub.TeamB.PlayerIDs), Score: sub.TeamB.Score},
		PlayerStats:    slices.Clone(sub.PlayerStats),
		WinningTeamIDs: slices.Clone(winners),
	}
}
