package club

import (
	"context"

	"github.com/mauv0809/puckpal/internal/stats"
)

// ClubStore defines the interface for interacting with the club's roster and
// match history.
type ClubStore interface {
	ListPlayers(ctx context.Context) ([]stats.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*stats.Player, error)
	SeedPlayers(ctx context.Context, players []stats.Player) (int, error)
	PersistPlayers(ctx context.Context, players []stats.Player) error

	ListMatches(ctx context.Context) ([]stats.Match, error)
	GetMatch(ctx context.Context, id string) (*stats.Match, error)
	AddMatch(ctx context.Context, match stats.Match) (string, error)
	DeleteMatch(ctx context.Context, id string) error

	// Atomically runs fn against a store bound to a single transaction. The
	// transaction is committed only if fn returns nil.
	Atomically(ctx context.Context, fn func(ClubStore) error) error
}
