package league

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/drafter"
	"github.com/mauv0809/puckpal/internal/stats"
)

// Team sizes used for generated matchups and combination stats.
const (
	TeamASize = 2
	TeamBSize = 3
)

// Matchups lists every way to split the roster into teams of sizeA and
// sizeB players. The result is empty unless the roster has exactly
// sizeA+sizeB players.
func (s *Service) Matchups(ctx context.Context, sizeA, sizeB int) ([]stats.GeneratedMatchup, error) {
	roster, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	return stats.GenerateMatchups(roster, sizeA, sizeB), nil
}

// TeamCombinations reports how each 2 vs 3 matchup has fared in the match
// history.
func (s *Service) TeamCombinations(ctx context.Context) ([]stats.CombinationStats, error) {
	store, err := s.clubStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	roster, err := store.ListPlayers(ctx)
	if err != nil {
		return nil, s.classify(err)
	}
	matches, err := store.ListMatches(ctx)
	if err != nil {
		return nil, s.classify(err)
	}
	return stats.TeamCombinationStats(roster, matches), nil
}

// SuggestTeams asks the drafter for a balanced split of the named players,
// or of the whole roster when names is empty. The answer is checked to be
// a partition of exactly those players and returned with canonical names.
func (s *Service) SuggestTeams(ctx context.Context, names []string) (*drafter.TeamSuggestion, error) {
	if s.drafter == nil {
		return nil, fmt.Errorf("%w: drafter is not configured", ErrUnavailable)
	}
	roster, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}

	selected := roster
	if len(names) > 0 {
		selected = make([]stats.Player, 0, len(names))
		seen := make(map[string]bool, len(names))
		var unknown []string
		for _, name := range names {
			m, ok := club.BestMatch(name, roster)
			if !ok {
				unknown = append(unknown, name)
				continue
			}
			if seen[m.Player.ID] {
				continue
			}
			seen[m.Player.ID] = true
			selected = append(selected, m.Player)
		}
		if len(unknown) > 0 {
			return nil, fmt.Errorf("%w: unknown players: %s", ErrValidation, strings.Join(unknown, ", "))
		}
	}
	if len(selected) < 2 {
		return nil, fmt.Errorf("%w: at least 2 players are needed to suggest teams", ErrValidation)
	}

	summaries := make([]drafter.PlayerSummary, len(selected))
	for i, p := range selected {
		summaries[i] = drafter.PlayerSummary{
			Name:         p.Name,
			TotalGoals:   p.TotalGoals,
			WinLossRatio: p.WinLossRatio,
			GamesPlayed:  p.GamesPlayed,
		}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.metrics.IncDraftRequests("teams")
	suggestion, err := s.drafter.SuggestTeams(ctx, summaries)
	if err != nil {
		s.metrics.IncDraftFailures("teams")
		return nil, s.classify(err)
	}

	checked, err := checkPartition(suggestion, selected)
	if err != nil {
		s.metrics.IncDraftFailures("teams")
		log.Warn("Rejected team suggestion", "error", err, "teamA", suggestion.TeamA, "teamB", suggestion.TeamB)
		return nil, err
	}
	return checked, nil
}

// checkPartition verifies that the suggested teams split players exactly,
// with no one left out or placed twice, and rewrites names to roster
// spelling.
func checkPartition(suggestion *drafter.TeamSuggestion, players []stats.Player) (*drafter.TeamSuggestion, error) {
	byName := make(map[string]string, len(players))
	for _, p := range players {
		byName[strings.ToLower(strings.TrimSpace(p.Name))] = p.Name
	}

	used := make(map[string]bool, len(players))
	canonical := func(team []string) ([]string, error) {
		out := make([]string, 0, len(team))
		for _, name := range team {
			rosterName, ok := byName[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return nil, fmt.Errorf("%w: %q is not one of the players", ErrBadDraft, name)
			}
			if used[rosterName] {
				return nil, fmt.Errorf("%w: %q is placed twice", ErrBadDraft, rosterName)
			}
			used[rosterName] = true
			out = append(out, rosterName)
		}
		return out, nil
	}

	teamA, err := canonical(suggestion.TeamA)
	if err != nil {
		return nil, err
	}
	teamB, err := canonical(suggestion.TeamB)
	if err != nil {
		return nil, err
	}
	if len(teamA) == 0 || len(teamB) == 0 {
		return nil, fmt.Errorf("%w: both teams need players", ErrBadDraft)
	}
	if len(used) != len(byName) {
		return nil, fmt.Errorf("%w: %d of %d players were assigned", ErrBadDraft, len(used), len(byName))
	}
	return &drafter.TeamSuggestion{TeamA: teamA, TeamB: teamB, Reasoning: suggestion.Reasoning}, nil
}
