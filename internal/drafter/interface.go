package drafter

import (
	"context"

	"github.com/mauv0809/puckpal/internal/tournament"
)

// Drafter asks a generative model to draft tournaments and team splits.
type Drafter interface {
	DraftTournament(ctx context.Context, input tournament.DraftInput) (*tournament.Draft, error)
	SuggestTeams(ctx context.Context, players []PlayerSummary) (*TeamSuggestion, error)
}
