package tournament

import "context"

// Store defines the persistence operations for tournaments.
type Store interface {
	Save(ctx context.Context, t *Tournament) error
	Get(ctx context.Context, id string) (*Tournament, error)
	// Latest returns the newest in-progress tournament, or failing that the
	// newest new one. It returns ErrNotFound when there is neither.
	Latest(ctx context.Context) (*Tournament, error)
	Completed(ctx context.Context) ([]*Tournament, error)
	Update(ctx context.Context, t *Tournament) error
}
