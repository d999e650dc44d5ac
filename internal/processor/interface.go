package processor

import (
	"context"

	"github.com/mauv0809/puckpal/internal/notifier"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
)

// League defines the read operations required by the processor.
type League interface {
	Match(ctx context.Context, id string) (*stats.Match, error)
	Players(ctx context.Context) ([]stats.Player, error)
	Leaderboard(ctx context.Context) ([]stats.Player, error)
	Tournament(ctx context.Context, id string) (*tournament.Tournament, error)
}

// Notifier defines the notification operations required by the processor.
// This is an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
