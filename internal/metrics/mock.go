package metrics

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	matchesRecorded      int
	matchesDeleted       int
	recomputeDurations   []float64
	tournamentsCreated   int
	tournamentsCompleted int
	draftRequests        map[string]int
	draftFailures        map[string]int
	collaboratorTimeouts int
	slackNotifSent       int
	slackNotifFailed     int
	scheduledRuns        int
	startupTime          float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		recomputeDurations: make([]float64, 0),
		draftRequests:      make(map[string]int),
		draftFailures:      make(map[string]int),
	}
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncMatchesDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesDeleted++
}

func (m *Mock) ObserveRecomputeDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recomputeDurations = append(m.recomputeDurations, duration)
}

func (m *Mock) IncTournamentsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsCreated++
}

func (m *Mock) IncTournamentsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tournamentsCompleted++
}

func (m *Mock) IncDraftRequests(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draftRequests[kind]++
}

func (m *Mock) IncDraftFailures(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draftFailures[kind]++
}

func (m *Mock) IncCollaboratorTimeouts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collaboratorTimeouts++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncScheduledRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduledRuns++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesRecorded returns the number of times IncMatchesRecorded was called.
func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

// MatchesDeleted returns the number of times IncMatchesDeleted was called.
func (m *Mock) MatchesDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesDeleted
}

// RecomputeDurations returns all observed recompute durations.
func (m *Mock) RecomputeDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.recomputeDurations...)
}

func (m *Mock) TournamentsCreated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsCreated
}

func (m *Mock) TournamentsCompleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tournamentsCompleted
}

// DraftRequests returns the number of model requests of the given kind.
func (m *Mock) DraftRequests(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draftRequests[kind]
}

// DraftFailures returns the number of failed model requests of the given kind.
func (m *Mock) DraftFailures(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draftFailures[kind]
}

func (m *Mock) CollaboratorTimeouts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collaboratorTimeouts
}

func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

func (m *Mock) ScheduledRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduledRuns
}

func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}

// MockStore is an in-memory MetricsStore.
type MockStore struct {
	mu       sync.Mutex
	Counters map[string]int
}

var _ MetricsStore = (*MockStore)(nil)

// NewMockStore creates an empty in-memory counter store.
func NewMockStore() *MockStore {
	return &MockStore{Counters: make(map[string]int)}
}

func (m *MockStore) Increment(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Counters[key]++
}

func (m *MockStore) GetAll(_ context.Context) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.Counters))
	for k, v := range m.Counters {
		out[k] = v
	}
	return out, nil
}
