package tournament

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ValidateDraftInput checks a draft request before any drafter is called.
func ValidateDraftInput(input DraftInput) error {
	var problems []string
	if len(input.PlayerNames) < 2 {
		problems = append(problems, "at least 2 players are required")
	}
	for i, name := range input.PlayerNames {
		if strings.TrimSpace(name) == "" {
			problems = append(problems, fmt.Sprintf("player name %d is empty", i+1))
		}
	}
	if !input.Type.Valid() {
		problems = append(problems, fmt.Sprintf("unknown tournament type %q", input.Type))
	}
	if len(strings.TrimSpace(input.ScoringSystem)) < minScoringSystemLength {
		problems = append(problems, fmt.Sprintf("scoring system must be at least %d characters", minScoringSystemLength))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// FromDraft builds a new tournament from a drafted structure and the input
// it was drafted for. Every schedule item gets a fresh id. An item stays
// completed only if the draft already names its winner.
func FromDraft(draft Draft, input DraftInput, now time.Time) (*Tournament, error) {
	name := strings.TrimSpace(draft.TournamentName)
	if name == "" {
		return nil, fmt.Errorf("%w: drafted tournament has no name", ErrInvalidInput)
	}

	schedule := make([]ScheduleItem, 0, len(draft.Schedule))
	for _, item := range draft.Schedule {
		item.ID = uuid.NewString()
		item.Winner = strings.TrimSpace(item.Winner)
		if item.Status != ItemCompleted || item.Winner == "" {
			item.Status = ItemPending
			item.Winner = ""
		}
		item.Participants = normaliseParticipants(item.Participants)
		schedule = append(schedule, item)
	}

	return &Tournament{
		ID:                   uuid.NewString(),
		Name:                 name,
		Slug:                 slug.Make(name),
		Description:          draft.Description,
		PlayerNames:          slices.Clone(input.PlayerNames),
		Type:                 input.Type,
		ScoringSystem:        input.ScoringSystem,
		Schedule:             schedule,
		StandingsExplanation: draft.StandingsExplanation,
		AdvancementRules:     draft.AdvancementRules,
		TieBreakingRules:     draft.TieBreakingRules,
		OverallStatus:        StatusNew,
		CreatedAt:            now,
	}, nil
}

func normaliseParticipants(participants []string) []string {
	names := make([]string, 0, 2)
	for _, p := range participants {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) != 2 {
		return []string{}
	}
	return names
}

// Item returns the schedule item with the given id.
func (t *Tournament) Item(itemID string) (*ScheduleItem, error) {
	for i := range t.Schedule {
		if t.Schedule[i].ID == itemID {
			return &t.Schedule[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// RecordWinner marks a game as completed with the given winner. When the
// game's two sides are known the winner must be one of them. The first
// result moves a new tournament to in-progress.
func (t *Tournament) RecordWinner(itemID, winner string) error {
	if t.OverallStatus == StatusCompleted {
		return ErrAlreadyCompleted
	}
	winner = strings.TrimSpace(winner)
	if winner == "" {
		return fmt.Errorf("%w: winner is empty", ErrInvalidWinner)
	}
	item, err := t.Item(itemID)
	if err != nil {
		return err
	}
	if sides := t.knownSides(*item); sides != nil && !slices.Contains(sides, winner) {
		return fmt.Errorf("%w: %q did not play in %q", ErrInvalidWinner, winner, item.Match)
	}

	item.Winner = winner
	item.Status = ItemCompleted
	if t.OverallStatus == StatusNew || t.OverallStatus == "" {
		t.OverallStatus = StatusInProgress
	}
	return nil
}

// Sides returns the two names playing in the item, taken from the
// participants or else parsed from the match text. It is nil when neither
// gives two names.
func (item ScheduleItem) Sides() []string {
	if len(item.Participants) == 2 {
		return item.Participants
	}
	if first, second, ok := ParseParticipants(item.Match); ok {
		return []string{first, second}
	}
	return nil
}

// knownSides returns the item's sides when they can be checked: an explicit
// participant pair, or match text naming two registered players. Text such
// as "Winner of M1 vs Winner of M2" is not checked.
func (t *Tournament) knownSides(item ScheduleItem) []string {
	if len(item.Participants) == 2 {
		return item.Participants
	}
	sides := item.Sides()
	for _, name := range sides {
		if !slices.Contains(t.PlayerNames, name) {
			return nil
		}
	}
	return sides
}

// Finalize closes the tournament once every game has a winner.
func (t *Tournament) Finalize() error {
	if t.OverallStatus == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if len(t.Schedule) == 0 {
		return fmt.Errorf("%w: schedule is empty", ErrIncomplete)
	}
	pending := 0
	for _, item := range t.Schedule {
		if item.Status != ItemCompleted || item.Winner == "" {
			pending++
		}
	}
	if pending > 0 {
		return fmt.Errorf("%w: %d of %d games have no winner", ErrIncomplete, pending, len(t.Schedule))
	}
	t.OverallStatus = StatusCompleted
	return nil
}

// Standings computes the current standings table.
func (t *Tournament) Standings() []PlayerScore {
	return ComputeStandings(t.PlayerNames, t.Schedule)
}
