package league

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/tournament"
)

func (s *Service) tournamentStore() (tournament.Store, error) {
	if s.tournaments == nil {
		return nil, fmt.Errorf("%w: tournament store is not initialised", ErrUnavailable)
	}
	return s.tournaments, nil
}

// CreateTournament drafts a tournament for the given players and stores it
// with status new.
func (s *Service) CreateTournament(ctx context.Context, input tournament.DraftInput) (*tournament.Tournament, error) {
	if err := tournament.ValidateDraftInput(input); err != nil {
		return nil, s.classify(err)
	}
	store, err := s.tournamentStore()
	if err != nil {
		return nil, err
	}
	if s.drafter == nil {
		return nil, fmt.Errorf("%w: drafter is not configured", ErrUnavailable)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	s.metrics.IncDraftRequests("tournament")
	draft, err := s.drafter.DraftTournament(ctx, input)
	if err != nil {
		s.metrics.IncDraftFailures("tournament")
		return nil, s.classify(err)
	}
	t, err := tournament.FromDraft(*draft, input, s.clock.Now())
	if err != nil {
		s.metrics.IncDraftFailures("tournament")
		return nil, fmt.Errorf("%w: %w", ErrBadDraft, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := store.Save(ctx, t); err != nil {
		return nil, s.classify(err)
	}

	s.metrics.IncTournamentsCreated()
	s.count(ctx, metrics.KeyTournamentsCreated)
	log.Info("Created tournament", "tournamentID", t.ID, "name", t.Name, "games", len(t.Schedule))
	return t, nil
}

// Tournament returns a tournament by id.
func (s *Service) Tournament(ctx context.Context, id string) (*tournament.Tournament, error) {
	store, err := s.tournamentStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	t, err := store.Get(ctx, id)
	return t, s.classify(err)
}

// LatestTournament returns the newest in-progress tournament, or the newest
// new one when none is in progress.
func (s *Service) LatestTournament(ctx context.Context) (*tournament.Tournament, error) {
	store, err := s.tournamentStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	t, err := store.Latest(ctx)
	return t, s.classify(err)
}

// CompletedTournaments lists finished tournaments, newest first.
func (s *Service) CompletedTournaments(ctx context.Context) ([]*tournament.Tournament, error) {
	store, err := s.tournamentStore()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	list, err := store.Completed(ctx)
	return list, s.classify(err)
}

// TournamentStandings returns the tournament together with its current
// table.
func (s *Service) TournamentStandings(ctx context.Context, id string) (*tournament.Tournament, []tournament.PlayerScore, error) {
	t, err := s.Tournament(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return t, t.Standings(), nil
}

// RecordTournamentWinner stores the winner of one scheduled game.
func (s *Service) RecordTournamentWinner(ctx context.Context, id, itemID, winner string) (*tournament.Tournament, error) {
	return s.mutateTournament(ctx, id, func(t *tournament.Tournament) error {
		return t.RecordWinner(itemID, winner)
	})
}

// FinalizeTournament marks a fully played tournament completed and
// announces it.
func (s *Service) FinalizeTournament(ctx context.Context, id string, dryRun bool) (*tournament.Tournament, error) {
	t, err := s.mutateTournament(ctx, id, (*tournament.Tournament).Finalize)
	if err != nil {
		return nil, err
	}
	s.metrics.IncTournamentsCompleted()
	s.count(ctx, metrics.KeyTournamentsCompleted)
	log.Info("Finalized tournament", "tournamentID", t.ID, "name", t.Name)
	s.publish(ctx, pubsub.EventTournamentCompleted, pubsub.TournamentEvent{TournamentID: t.ID}, dryRun)
	return t, nil
}

// mutateTournament loads, changes and stores a tournament under the writer
// lock.
func (s *Service) mutateTournament(ctx context.Context, id string, change func(*tournament.Tournament) error) (*tournament.Tournament, error) {
	store, err := s.tournamentStore()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, err := store.Get(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}
	if err := change(t); err != nil {
		return nil, s.classify(err)
	}
	if err := store.Update(ctx, t); err != nil {
		return nil, s.classify(err)
	}
	return t, nil
}
