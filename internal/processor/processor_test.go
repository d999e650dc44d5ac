package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/notifier"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeague serves fixed data.
type fakeLeague struct {
	matches     map[string]stats.Match
	players     []stats.Player
	tournaments map[string]*tournament.Tournament
	err         error
}

func (f *fakeLeague) Match(ctx context.Context, id string) (*stats.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.matches[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &m, nil
}

func (f *fakeLeague) Players(ctx context.Context) ([]stats.Player, error) {
	return f.players, f.err
}

func (f *fakeLeague) Leaderboard(ctx context.Context) ([]stats.Player, error) {
	return stats.SortLeaderboard(f.players), f.err
}

func (f *fakeLeague) Tournament(ctx context.Context, id string) (*tournament.Tournament, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tournaments[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return t, nil
}

func newLeague() *fakeLeague {
	return &fakeLeague{
		matches: map[string]stats.Match{
			"m1": {ID: "m1", TeamA: stats.TeamDetails{PlayerIDs: []string{"p1"}, Score: 10}},
		},
		players: []stats.Player{
			{ID: "p1", Name: "Alice", TotalPoints: 2},
			{ID: "p2", Name: "Bob", TotalPoints: 4},
		},
		tournaments: map[string]*tournament.Tournament{
			"t1": {
				ID:          "t1",
				Name:        "Cup",
				PlayerNames: []string{"Alice", "Bob"},
				Schedule: []tournament.ScheduleItem{
					{Participants: []string{"Alice", "Bob"}, Status: tournament.ItemCompleted, Winner: "Bob"},
				},
			},
		},
	}
}

func TestHandleMatchRecorded(t *testing.T) {
	notif := notifier.NewMock()
	p := New(newLeague(), notif, nil)

	require.NoError(t, p.HandleMatchRecorded(context.Background(), pubsub.MatchEvent{MatchID: "m1"}, true))
	require.Len(t, notif.SendMatchResultCalls, 1)
	assert.Equal(t, "m1", notif.SendMatchResultCalls[0].ID)
	assert.Equal(t, []bool{true}, notif.DryRuns)

	err := p.HandleMatchRecorded(context.Background(), pubsub.MatchEvent{MatchID: "gone"}, false)
	assert.Error(t, err)
	assert.Len(t, notif.SendMatchResultCalls, 1)
}

func TestHandleTournamentCompleted(t *testing.T) {
	notif := notifier.NewMock()
	p := New(newLeague(), notif, nil)

	require.NoError(t, p.HandleTournamentCompleted(context.Background(), pubsub.TournamentEvent{TournamentID: "t1"}, false))
	require.Len(t, notif.SendTournamentCompletedCalls, 1)
	assert.Equal(t, "Cup", notif.SendTournamentCompletedCalls[0].Name)
}

func TestPostLeaderboard(t *testing.T) {
	t.Run("posts and counts", func(t *testing.T) {
		notif := notifier.NewMock()
		activity := metrics.NewMockStore()
		p := New(newLeague(), notif, activity)

		require.NoError(t, p.PostLeaderboard(context.Background(), false))
		require.Len(t, notif.SendLeaderboardCalls, 1)
		assert.Equal(t, "Bob", notif.SendLeaderboardCalls[0][0].Name)
		assert.Equal(t, 1, activity.Counters[metrics.KeyLeaderboardPosts])
	})

	t.Run("empty roster posts nothing", func(t *testing.T) {
		notif := notifier.NewMock()
		p := New(&fakeLeague{}, notif, nil)
		require.NoError(t, p.PostLeaderboard(context.Background(), false))
		assert.Empty(t, notif.SendLeaderboardCalls)
	})

	t.Run("notifier failure surfaces", func(t *testing.T) {
		notif := notifier.NewMock()
		notif.SendLeaderboardFunc = func(players []stats.Player) error { return errors.New("slack down") }
		activity := metrics.NewMockStore()
		p := New(newLeague(), notif, activity)

		assert.Error(t, p.PostLeaderboard(context.Background(), false))
		assert.Empty(t, activity.Counters)
	})
}
