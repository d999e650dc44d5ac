package tournament

import (
	"context"
	"sync"
)

// MockStore is an in-memory Store for tests. It is safe for concurrent use.
// Hooks override the default behaviour when set.
type MockStore struct {
	mu          sync.Mutex
	tournaments map[string]*Tournament

	SaveFunc      func(ctx context.Context, t *Tournament) error
	GetFunc       func(ctx context.Context, id string) (*Tournament, error)
	LatestFunc    func(ctx context.Context) (*Tournament, error)
	CompletedFunc func(ctx context.Context) ([]*Tournament, error)
	UpdateFunc    func(ctx context.Context, t *Tournament) error

	SaveCalls   []*Tournament
	UpdateCalls []*Tournament
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{tournaments: make(map[string]*Tournament)}
}

// Reset clears all call records and stored tournaments.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournaments = make(map[string]*Tournament)
	m.SaveCalls = nil
	m.UpdateCalls = nil
}

func (m *MockStore) Save(ctx context.Context, t *Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, clone(t))
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	m.tournaments[t.ID] = clone(t)
	return nil
}

func (m *MockStore) Update(ctx context.Context, t *Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, clone(t))
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	if _, ok := m.tournaments[t.ID]; !ok {
		return ErrNotFound
	}
	m.tournaments[t.ID] = clone(t)
	return nil
}

func (m *MockStore) Get(ctx context.Context, id string) (*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	t, ok := m.tournaments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(t), nil
}

func (m *MockStore) Latest(ctx context.Context) (*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}
	for _, status := range []Status{StatusInProgress, StatusNew} {
		var latest *Tournament
		for _, t := range m.tournaments {
			if t.OverallStatus == status && (latest == nil || t.CreatedAt.After(latest.CreatedAt)) {
				latest = t
			}
		}
		if latest != nil {
			return clone(latest), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockStore) Completed(ctx context.Context) ([]*Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CompletedFunc != nil {
		return m.CompletedFunc(ctx)
	}
	out := []*Tournament{}
	for _, t := range m.tournaments {
		if t.OverallStatus == StatusCompleted {
			out = append(out, clone(t))
		}
	}
	return out, nil
}

func clone(t *Tournament) *Tournament {
	c := *t
	c.PlayerNames = append([]string(nil), t.PlayerNames...)
	c.Schedule = make([]ScheduleItem, len(t.Schedule))
	for i, item := range t.Schedule {
		item.Participants = append([]string(nil), item.Participants...)
		c.Schedule[i] = item
	}
	return &c
}
