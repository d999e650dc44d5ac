package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendMatchResultCalls         []stats.Match
	SendLeaderboardCalls         [][]stats.Player
	SendTournamentCompletedCalls []*tournament.Tournament
	DryRuns                      []bool

	// Spies
	SendMatchResultFunc         func(match stats.Match) error
	SendLeaderboardFunc         func(players []stats.Player) error
	SendTournamentCompletedFunc func(t *tournament.Tournament) error

	FormatLeaderboardResponseFunc    func(players []stats.Player) (any, error)
	FormatPlayerStatsResponseFunc    func(player *stats.Player, query string) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)
	FormatStandingsResponseFunc      func(t *tournament.Tournament, standings []tournament.PlayerScore) (any, error)

	// Last formatted responses
	LastLeaderboardResponse    any
	LastPlayerStatsResponse    any
	LastPlayerNotFoundResponse any
	LastStandingsResponse      any
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = nil
	m.SendLeaderboardCalls = nil
	m.SendTournamentCompletedCalls = nil
	m.DryRuns = nil
	m.LastLeaderboardResponse = nil
	m.LastPlayerStatsResponse = nil
	m.LastPlayerNotFoundResponse = nil
	m.LastStandingsResponse = nil
}

func (m *Mock) SendMatchResult(_ context.Context, match stats.Match, _ []stats.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, match)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(match)
	}
	return nil
}

func (m *Mock) SendLeaderboard(_ context.Context, players []stats.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, players)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(players)
	}
	return nil
}

func (m *Mock) SendTournamentCompleted(_ context.Context, t *tournament.Tournament, _ []tournament.PlayerScore, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendTournamentCompletedCalls = append(m.SendTournamentCompletedCalls, t)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendTournamentCompletedFunc != nil {
		return m.SendTournamentCompletedFunc(t)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(players []stats.Player) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err := m.FormatLeaderboardResponseFunc(players)
		m.LastLeaderboardResponse = resp
		return resp, err
	}
	m.LastLeaderboardResponse = "formatted_leaderboard"
	return m.LastLeaderboardResponse, nil
}

func (m *Mock) FormatPlayerStatsResponse(player *stats.Player, query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerStatsResponseFunc != nil {
		resp, err := m.FormatPlayerStatsResponseFunc(player, query)
		m.LastPlayerStatsResponse = resp
		return resp, err
	}
	m.LastPlayerStatsResponse = "formatted_player_stats"
	return m.LastPlayerStatsResponse, nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerNotFoundResponseFunc != nil {
		resp, err := m.FormatPlayerNotFoundResponseFunc(query)
		m.LastPlayerNotFoundResponse = resp
		return resp, err
	}
	m.LastPlayerNotFoundResponse = "formatted_player_not_found"
	return m.LastPlayerNotFoundResponse, nil
}

func (m *Mock) FormatStandingsResponse(t *tournament.Tournament, standings []tournament.PlayerScore) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatStandingsResponseFunc != nil {
		resp, err := m.FormatStandingsResponseFunc(t, standings)
		m.LastStandingsResponse = resp
		return resp, err
	}
	m.LastStandingsResponse = "formatted_standings"
	return m.LastStandingsResponse, nil
}
