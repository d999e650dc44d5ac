package processor

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/pubsub"
)

// New creates a new Processor. activity may be nil.
func New(league League, notifier Notifier, activity metrics.MetricsStore) *Processor {
	return &Processor{
		league:   league,
		notifier: notifier,
		activity: activity,
	}
}

// HandleMatchRecorded posts the result of a freshly recorded match.
func (p *Processor) HandleMatchRecorded(ctx context.Context, event pubsub.MatchEvent, dryRun bool) error {
	log.Info("Handling recorded match", "matchID", event.MatchID)
	match, err := p.league.Match(ctx, event.MatchID)
	if err != nil {
		return fmt.Errorf("failed to load match %s: %w", event.MatchID, err)
	}
	players, err := p.league.Players(ctx)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}
	if err := p.notifier.SendMatchResult(ctx, *match, players, dryRun); err != nil {
		return fmt.Errorf("failed to send match result: %w", err)
	}
	log.Info("Sent match result", "matchID", match.ID)
	return nil
}

// HandleTournamentCompleted posts the final table of a finished tournament.
func (p *Processor) HandleTournamentCompleted(ctx context.Context, event pubsub.TournamentEvent, dryRun bool) error {
	log.Info("Handling completed tournament", "tournamentID", event.TournamentID)
	t, err := p.league.Tournament(ctx, event.TournamentID)
	if err != nil {
		return fmt.Errorf("failed to load tournament %s: %w", event.TournamentID, err)
	}
	if err := p.notifier.SendTournamentCompleted(ctx, t, t.Standings(), dryRun); err != nil {
		return fmt.Errorf("failed to send tournament result: %w", err)
	}
	log.Info("Sent tournament result", "tournamentID", t.ID)
	return nil
}

// PostLeaderboard posts the current leaderboard to the channel.
func (p *Processor) PostLeaderboard(ctx context.Context, dryRun bool) error {
	log.Info("Posting leaderboard...")
	board, err := p.league.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if len(board) == 0 {
		log.Info("No players, skipping leaderboard post.")
		return nil
	}
	if err := p.notifier.SendLeaderboard(ctx, board, dryRun); err != nil {
		return fmt.Errorf("failed to send leaderboard: %w", err)
	}
	if !dryRun && p.activity != nil {
		p.activity.Increment(ctx, metrics.KeyLeaderboardPosts)
	}
	log.Info("Leaderboard posted.", "players", len(board))
	return nil
}
