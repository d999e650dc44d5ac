package club

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mauv0809/puckpal/internal/stats"
)

// MockStore is an in-memory ClubStore for testing. It is safe for concurrent
// use. Each …Func hook replaces the default behaviour when set.
type MockStore struct {
	mu sync.Mutex

	Players []stats.Player
	Matches []stats.Match
	nextID  int

	ListPlayersFunc     func(ctx context.Context) ([]stats.Player, error)
	GetPlayerByNameFunc func(ctx context.Context, name string) (*stats.Player, error)
	SeedPlayersFunc     func(ctx context.Context, players []stats.Player) (int, error)
	PersistPlayersFunc  func(ctx context.Context, players []stats.Player) error
	ListMatchesFunc     func(ctx context.Context) ([]stats.Match, error)
	GetMatchFunc        func(ctx context.Context, id string) (*stats.Match, error)
	AddMatchFunc        func(ctx context.Context, match stats.Match) (string, error)
	DeleteMatchFunc     func(ctx context.Context, id string) error

	// Call records
	PersistPlayersCalls [][]stats.Player
	AddMatchCalls       []stats.Match
	DeleteMatchCalls    []string
	AtomicallyCalls     int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistPlayersCalls = nil
	m.AddMatchCalls = nil
	m.DeleteMatchCalls = nil
	m.AtomicallyCalls = 0
}

// Atomically snapshots the stored state and restores it if fn fails.
func (m *MockStore) Atomically(ctx context.Context, fn func(ClubStore) error) error {
	m.mu.Lock()
	m.AtomicallyCalls++
	players := slices.Clone(m.Players)
	matches := slices.Clone(m.Matches)
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.Players = players
		m.Matches = matches
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *MockStore) ListPlayers(ctx context.Context) ([]stats.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx)
	}
	return slices.Clone(m.Players), nil
}

func (m *MockStore) GetPlayerByName(ctx context.Context, name string) (*stats.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerByNameFunc != nil {
		return m.GetPlayerByNameFunc(ctx, name)
	}
	if match, ok := BestMatch(name, m.Players); ok {
		return &match.Player, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
}

func (m *MockStore) SeedPlayers(ctx context.Context, players []stats.Player) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SeedPlayersFunc != nil {
		return m.SeedPlayersFunc(ctx, players)
	}
	added := 0
	for _, p := range players {
		exists := slices.ContainsFunc(m.Players, func(q stats.Player) bool {
			return q.ID == p.ID || q.Name == p.Name
		})
		if !exists {
			m.Players = append(m.Players, stats.Player{ID: p.ID, Name: p.Name})
			added++
		}
	}
	return added, nil
}

func (m *MockStore) PersistPlayers(ctx context.Context, players []stats.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistPlayersCalls = append(m.PersistPlayersCalls, slices.Clone(players))
	if m.PersistPlayersFunc != nil {
		return m.PersistPlayersFunc(ctx, players)
	}
	for _, p := range players {
		for i := range m.Players {
			if m.Players[i].ID == p.ID {
				m.Players[i] = p
			}
		}
	}
	return nil
}

func (m *MockStore) ListMatches(ctx context.Context) ([]stats.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx)
	}
	return slices.Clone(m.Matches), nil
}

func (m *MockStore) GetMatch(ctx context.Context, id string) (*stats.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, id)
	}
	for _, match := range m.Matches {
		if match.ID == id {
			return &match, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
}

func (m *MockStore) AddMatch(ctx context.Context, match stats.Match) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddMatchCalls = append(m.AddMatchCalls, match)
	if m.AddMatchFunc != nil {
		return m.AddMatchFunc(ctx, match)
	}
	if match.ID == "" {
		m.nextID++
		match.ID = fmt.Sprintf("match-%d", m.nextID)
	}
	m.Matches = append(m.Matches, match)
	return match.ID, nil
}

func (m *MockStore) DeleteMatch(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteMatchCalls = append(m.DeleteMatchCalls, id)
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(ctx, id)
	}
	for i, match := range m.Matches {
		if match.ID == id {
			m.Matches = slices.Delete(m.Matches, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
}
