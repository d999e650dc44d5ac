package league

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/stats"
)

// RecordMatch validates a submission against the roster, stores the match
// and recomputes every player's statistics, all in one transaction. Nothing
// is written when validation fails.
func (s *Service) RecordMatch(ctx context.Context, sub stats.MatchSubmission, dryRun bool) (*stats.Match, error) {
	store, err := s.clubStore()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var recorded stats.Match
	err = store.Atomically(ctx, func(tx club.ClubStore) error {
		roster, err := tx.ListPlayers(ctx)
		if err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		if err := stats.ValidateSubmission(sub, roster); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}

		match := stats.BuildMatch(sub)
		if match.Date.IsZero() {
			match.Date = s.clock.Now()
		}
		id, err := tx.AddMatch(ctx, match)
		if err != nil {
			return fmt.Errorf("failed to add match: %w", err)
		}
		match.ID = id
		recorded = match

		if err := s.recompute(ctx, tx); err != nil {
			return fmt.Errorf("failed to recompute statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Warn("Match was not recorded", "error", err)
		return nil, s.classify(err)
	}

	s.metrics.IncMatchesRecorded()
	s.count(ctx, metrics.KeyMatchesRecorded)
	log.Info("Recorded match", "matchID", recorded.ID, "teamA", recorded.TeamA.Score, "teamB", recorded.TeamB.Score)
	s.publish(ctx, pubsub.EventMatchRecorded, pubsub.MatchEvent{MatchID: recorded.ID}, dryRun)
	return &recorded, nil
}

// DeleteMatch removes a match and recomputes every player's statistics from
// the remaining history.
func (s *Service) DeleteMatch(ctx context.Context, id string, dryRun bool) error {
	store, err := s.clubStore()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err = store.Atomically(ctx, func(tx club.ClubStore) error {
		if err := tx.DeleteMatch(ctx, id); err != nil {
			return fmt.Errorf("failed to delete match: %w", err)
		}
		if err := s.recompute(ctx, tx); err != nil {
			return fmt.Errorf("failed to recompute statistics: %w", err)
		}
		return nil
	})
	if err != nil {
		return s.classify(err)
	}

	s.metrics.IncMatchesDeleted()
	s.count(ctx, metrics.KeyMatchesDeleted)
	log.Info("Deleted match", "matchID", id)
	s.publish(ctx, pubsub.EventMatchDeleted, pubsub.MatchEvent{MatchID: id}, dryRun)
	return nil
}

// RecomputeAll rebuilds the stored aggregates from the match history
// without changing it.
func (s *Service) RecomputeAll(ctx context.Context) ([]stats.Player, error) {
	store, err := s.clubStore()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var players []stats.Player
	err = store.Atomically(ctx, func(tx club.ClubStore) error {
		if err := s.recompute(ctx, tx); err != nil {
			return err
		}
		list, err := tx.ListPlayers(ctx)
		players = list
		return err
	})
	if err != nil {
		return nil, s.classify(err)
	}
	return players, nil
}

// SeedPlayers adds players missing from the roster. Existing names are left
// untouched.
func (s *Service) SeedPlayers(ctx context.Context, players []stats.Player) (int, error) {
	store, err := s.clubStore()
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	added, err := store.SeedPlayers(ctx, players)
	return added, s.classify(err)
}
