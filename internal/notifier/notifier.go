package notifier

import (
	"context"

	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
)

// Notifier defines a high-level interface for sending notifications about league events.
type Notifier interface {
	// For recorded matches; players resolves ids to names.
	SendMatchResult(ctx context.Context, match stats.Match, players []stats.Player, dryRun bool) error
	// For the weekly post and the leaderboard command
	SendLeaderboard(ctx context.Context, players []stats.Player, dryRun bool) error
	// For finalized tournaments
	SendTournamentCompleted(ctx context.Context, t *tournament.Tournament, standings []tournament.PlayerScore, dryRun bool) error

	// For formatting responses for slash commands
	FormatLeaderboardResponse(players []stats.Player) (any, error)
	FormatPlayerStatsResponse(player *stats.Player, query string) (any, error)
	FormatPlayerNotFoundResponse(query string) (any, error)
	FormatStandingsResponse(t *tournament.Tournament, standings []tournament.PlayerScore) (any, error)
}
