package league

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/stats"
)

// New creates a league Service. deps.Metrics defaults to a discarding mock
// when nil.
func New(deps Deps, opts ...Option) *Service {
	s := &Service{
		club:        deps.Club,
		tournaments: deps.Tournaments,
		drafter:     deps.Drafter,
		pubsub:      deps.PubSub,
		metrics:     deps.Metrics,
		activity:    deps.Activity,
		clock:       clockwork.NewRealClock(),
		timeout:     DefaultTimeout,
	}
	if s.metrics == nil {
		s.metrics = metrics.NewMock()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) clubStore() (club.ClubStore, error) {
	if s.club == nil {
		return nil, fmt.Errorf("%w: club store is not initialised", ErrUnavailable)
	}
	return s.club, nil
}

// count bumps a persisted activity counter if a store is configured.
func (s *Service) count(ctx context.Context, key string) {
	if s.activity != nil {
		s.activity.Increment(context.WithoutCancel(ctx), key)
	}
}

// publish sends an event unless publishing is disabled or dryRun is set.
// A failed publish is logged only: the state change it announces is
// already committed.
func (s *Service) publish(ctx context.Context, topic pubsub.EventType, data any, dryRun bool) {
	if s.pubsub == nil {
		log.Debug("Pub/Sub not configured, skipping event", "topic", topic)
		return
	}
	if dryRun {
		log.Info("[Dry Run] Would publish event", "topic", topic, "data", data)
		return
	}
	if err := s.pubsub.SendMessage(ctx, topic, data); err != nil {
		log.Error("Failed to publish event", "error", err, "topic", topic)
	}
}

// recompute rebuilds every player's aggregate from the full match history
// and persists the result through store, usually a transaction.
func (s *Service) recompute(ctx context.Context, store club.ClubStore) error {
	start := s.clock.Now()
	roster, err := store.ListPlayers(ctx)
	if err != nil {
		return err
	}
	matches, err := store.ListMatches(ctx)
	if err != nil {
		return err
	}
	updated := stats.Recompute(roster, matches)
	if err := store.PersistPlayers(ctx, updated); err != nil {
		return err
	}
	s.metrics.ObserveRecomputeDuration(s.clock.Since(start).Seconds())
	log.Debug("Recomputed player statistics", "players", len(updated), "matches", len(matches))
	return nil
}

// Players returns the roster with its stored aggregates, in roster order.
func (s *Service) Players(ctx context.Context) ([]stats.Player, error) {
	store, err := s.clubStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	players, err := store.ListPlayers(ctx)
	return players, s.classify(err)
}

// Player finds a player by name, tolerating case and small typos.
func (s *Service) Player(ctx context.Context, name string) (*stats.Player, error) {
	store, err := s.clubStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	player, err := store.GetPlayerByName(ctx, name)
	return player, s.classify(err)
}

// Leaderboard returns the roster ranked by points, ratio, goals and goal
// difference.
func (s *Service) Leaderboard(ctx context.Context) ([]stats.Player, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}
	return stats.SortLeaderboard(players), nil
}

// Matches returns the match history, newest first.
func (s *Service) Matches(ctx context.Context) ([]stats.Match, error) {
	store, err := s.clubStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	matches, err := store.ListMatches(ctx)
	return matches, s.classify(err)
}

// Match returns a single match.
func (s *Service) Match(ctx context.Context, id string) (*stats.Match, error) {
	store, err := s.clubStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	match, err := store.GetMatch(ctx, id)
	return match, s.classify(err)
}

// Activity returns the lifetime activity counters.
func (s *Service) Activity(ctx context.Context) (map[string]int, error) {
	if s.activity == nil {
		return map[string]int{}, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	counters, err := s.activity.GetAll(ctx)
	return counters, s.classify(err)
}
