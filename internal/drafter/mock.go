package drafter

import (
	"context"
	"sync"

	"github.com/mauv0809/puckpal/internal/tournament"
)

// MockDrafter is a mock implementation of the Drafter interface for testing.
type MockDrafter struct {
	mu sync.Mutex

	DraftTournamentFunc func(ctx context.Context, input tournament.DraftInput) (*tournament.Draft, error)
	SuggestTeamsFunc    func(ctx context.Context, players []PlayerSummary) (*TeamSuggestion, error)

	DraftTournamentCalls []tournament.DraftInput
	SuggestTeamsCalls    [][]PlayerSummary
}

// NewMock creates a new mock instance.
func NewMock() *MockDrafter {
	return &MockDrafter{}
}

// Reset clears all call records.
func (m *MockDrafter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DraftTournamentCalls = nil
	m.SuggestTeamsCalls = nil
}

func (m *MockDrafter) DraftTournament(ctx context.Context, input tournament.DraftInput) (*tournament.Draft, error) {
	m.mu.Lock()
	m.DraftTournamentCalls = append(m.DraftTournamentCalls, input)
	fn := m.DraftTournamentFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, input)
	}
	return &tournament.Draft{TournamentName: "Mock Cup"}, nil
}

func (m *MockDrafter) SuggestTeams(ctx context.Context, players []PlayerSummary) (*TeamSuggestion, error) {
	m.mu.Lock()
	m.SuggestTeamsCalls = append(m.SuggestTeamsCalls, players)
	fn := m.SuggestTeamsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, players)
	}
	return &TeamSuggestion{}, nil
}
