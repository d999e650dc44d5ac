package league

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/drafter"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 7, 18, 0, 0, 0, time.UTC)

type fixture struct {
	svc         *Service
	club        *club.MockStore
	tournaments *tournament.MockStore
	drafter     *drafter.MockDrafter
	pubsub      *pubsub.MockPubSubClient
	metrics     *metrics.Mock
	activity    *metrics.MockStore
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		club:        club.NewMock(),
		tournaments: tournament.NewMock(),
		drafter:     drafter.NewMock(),
		pubsub:      pubsub.NewMock(),
		metrics:     metrics.NewMock(),
		activity:    metrics.NewMockStore(),
	}
	f.club.Players = []stats.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Carol"},
		{ID: "p4", Name: "Dave"},
		{ID: "p5", Name: "Eve"},
	}
	opts = append([]Option{WithClock(clockwork.NewFakeClockAt(testNow))}, opts...)
	f.svc = New(Deps{
		Club:        f.club,
		Tournaments: f.tournaments,
		Drafter:     f.drafter,
		PubSub:      f.pubsub,
		Metrics:     f.metrics,
		Activity:    f.activity,
	}, opts...)
	return f
}

// submission is Alice & Bob beating Carol, Dave & Eve 10-6.
func submission() stats.MatchSubmission {
	return stats.MatchSubmission{
		TeamA: stats.TeamDetails{PlayerIDs: []string{"p1", "p2"}, Score: 10},
		TeamB: stats.TeamDetails{PlayerIDs: []string{"p3", "p4", "p5"}, Score: 6},
		PlayerStats: []stats.PlayerMatchStats{
			{PlayerID: "p1", Goals: 6, Checks: 1},
			{PlayerID: "p2", Goals: 4},
			{PlayerID: "p3", Goals: 3},
			{PlayerID: "p4", Goals: 2, Checks: 2},
			{PlayerID: "p5", Goals: 1},
		},
	}
}

func playerByID(t *testing.T, players []stats.Player, id string) stats.Player {
	t.Helper()
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("player %s not found", id)
	return stats.Player{}
}

func TestRecordMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the match and recomputes stats", func(t *testing.T) {
		f := newFixture(t)
		match, err := f.svc.RecordMatch(ctx, submission(), false)
		require.NoError(t, err)

		assert.Equal(t, "match-1", match.ID)
		assert.Equal(t, testNow, match.Date, "missing date defaults to now")
		assert.Equal(t, []string{"p1", "p2"}, match.WinningTeamIDs)

		players, err := f.svc.Players(ctx)
		require.NoError(t, err)
		alice := playerByID(t, players, "p1")
		assert.Equal(t, 1, alice.Wins)
		assert.Equal(t, 2, alice.TotalPoints)
		assert.Equal(t, 6, alice.TotalGoals)
		assert.Equal(t, 1.0, alice.WinLossRatio)
		eve := playerByID(t, players, "p5")
		assert.Equal(t, 1, eve.Losses)
		assert.Equal(t, 1, eve.TotalPoints)
		assert.Equal(t, -4, eve.TeamGoalDifference)

		assert.Equal(t, 1, f.club.AtomicallyCalls)
		assert.Equal(t, 1, f.metrics.MatchesRecorded())
		assert.Len(t, f.metrics.RecomputeDurations(), 1)
		assert.Equal(t, 1, f.activity.Counters[metrics.KeyMatchesRecorded])
		require.Len(t, f.pubsub.SendMessageCalls, 1)
		assert.Equal(t, pubsub.EventMatchRecorded, f.pubsub.SendMessageCalls[0].Topic)
		assert.Equal(t, pubsub.MatchEvent{MatchID: "match-1"}, f.pubsub.SendMessageCalls[0].Data)
	})

	t.Run("dry run skips the event", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RecordMatch(ctx, submission(), true)
		require.NoError(t, err)
		assert.Empty(t, f.pubsub.SendMessageCalls)
	})

	t.Run("invalid submission writes nothing", func(t *testing.T) {
		f := newFixture(t)
		sub := submission()
		sub.TeamB.Score = 10

		_, err := f.svc.RecordMatch(ctx, sub, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		var verr *stats.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Empty(t, f.club.AddMatchCalls)
		assert.Empty(t, f.club.PersistPlayersCalls)
		assert.Empty(t, f.pubsub.SendMessageCalls)
		assert.Equal(t, 0, f.metrics.MatchesRecorded())
	})

	t.Run("failed persist rolls the match back", func(t *testing.T) {
		f := newFixture(t)
		f.club.PersistPlayersFunc = func(ctx context.Context, players []stats.Player) error {
			return errors.New("disk full")
		}

		_, err := f.svc.RecordMatch(ctx, submission(), false)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidation)
		assert.Empty(t, f.club.Matches)
		assert.Empty(t, f.pubsub.SendMessageCalls)
	})

	t.Run("slow store times out", func(t *testing.T) {
		f := newFixture(t, WithTimeout(20*time.Millisecond))
		f.club.ListPlayersFunc = func(ctx context.Context) ([]stats.Player, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}

		_, err := f.svc.RecordMatch(ctx, submission(), false)
		assert.ErrorIs(t, err, ErrTimeout)
		assert.Equal(t, 1, f.metrics.CollaboratorTimeouts())
	})

	t.Run("missing store is unavailable", func(t *testing.T) {
		svc := New(Deps{})
		_, err := svc.RecordMatch(ctx, submission(), false)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestDeleteMatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.RecordMatch(ctx, submission(), false)
	require.NoError(t, err)

	// Carol, Dave & Eve win the rematch 10-8.
	rematch := stats.MatchSubmission{
		TeamA: stats.TeamDetails{PlayerIDs: []string{"p1", "p2"}, Score: 8},
		TeamB: stats.TeamDetails{PlayerIDs: []string{"p3", "p4", "p5"}, Score: 10},
		PlayerStats: []stats.PlayerMatchStats{
			{PlayerID: "p1", Goals: 4},
			{PlayerID: "p2", Goals: 4},
			{PlayerID: "p3", Goals: 5},
			{PlayerID: "p4", Goals: 5},
			{PlayerID: "p5"},
		},
	}
	second, err := f.svc.RecordMatch(ctx, rematch, false)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteMatch(ctx, second.ID, false))

	players, err := f.svc.Players(ctx)
	require.NoError(t, err)
	carol := playerByID(t, players, "p3")
	assert.Equal(t, 0, carol.Wins)
	assert.Equal(t, 1, carol.Losses)
	assert.Equal(t, 1, carol.GamesPlayed)
	assert.Equal(t, 3, carol.TotalGoals)

	assert.Equal(t, 1, f.metrics.MatchesDeleted())
	assert.Equal(t, pubsub.EventMatchDeleted, f.pubsub.SendMessageCalls[2].Topic)

	err = f.svc.DeleteMatch(ctx, "nope", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.RecordMatch(ctx, submission(), false)
	require.NoError(t, err)

	board, err := f.svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 5)
	assert.Equal(t, "Alice", board[0].Name)
	assert.Equal(t, "Bob", board[1].Name)
	assert.Equal(t, "Carol", board[2].Name)
}

func TestPlayer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p, err := f.svc.Player(ctx, "  ALICE ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)

	_, err = f.svc.Player(ctx, "Zebedee")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecomputeAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.RecordMatch(ctx, submission(), false)
	require.NoError(t, err)

	// Corrupt the stored aggregate; recomputing restores it from history.
	f.club.Players[0].Wins = 42
	players, err := f.svc.RecomputeAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, playerByID(t, players, "p1").Wins)
}

func TestSeedPlayers(t *testing.T) {
	f := newFixture(t)
	added, err := f.svc.SeedPlayers(context.Background(), []stats.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p6", Name: "Frank"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Len(t, f.club.Players, 6)
}

func TestActivity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.RecordMatch(ctx, submission(), false)
	require.NoError(t, err)

	counters, err := f.svc.Activity(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{metrics.KeyMatchesRecorded: 1}, counters)

	empty, err := New(Deps{}).Activity(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
