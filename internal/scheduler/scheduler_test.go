package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPoster struct {
	mu      sync.Mutex
	dryRuns []bool
}

func (p *recordingPoster) PostLeaderboard(ctx context.Context, dryRun bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dryRuns = append(p.dryRuns, dryRun)
	return nil
}

func TestNew(t *testing.T) {
	s, err := New("", &recordingPoster{}, metrics.NewMock())
	require.NoError(t, err)
	defer s.Shutdown()

	assert.Equal(t, []string{"weekly-leaderboard"}, s.Jobs())
}

func TestNew_InvalidCron(t *testing.T) {
	_, err := New("every friday", &recordingPoster{}, metrics.NewMock())
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	poster := &recordingPoster{}
	m := metrics.NewMock()
	s, err := New(DefaultLeaderboardCron, poster, m)
	require.NoError(t, err)
	defer s.Shutdown()

	s.run()
	assert.Equal(t, []bool{false}, poster.dryRuns)
	assert.Equal(t, 1, m.ScheduledRuns())
}
