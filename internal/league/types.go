package league

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/drafter"
	"github.com/mauv0809/puckpal/internal/metrics"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/tournament"
)

// DefaultTimeout bounds every store and drafter call.
const DefaultTimeout = 15 * time.Second

// Service is the single writer for league state. Mutations are serialised
// by mu and each one runs inside a club store transaction.
type Service struct {
	club        club.ClubStore
	tournaments tournament.Store
	drafter     drafter.Drafter
	pubsub      pubsub.PubSubClient
	metrics     metrics.Metrics
	activity    metrics.MetricsStore
	clock       clockwork.Clock
	timeout     time.Duration

	mu sync.Mutex
}

// Deps are the collaborators a Service needs. Drafter and PubSub may be nil:
// drafting operations then fail with ErrUnavailable and events are not
// published.
type Deps struct {
	Club        club.ClubStore
	Tournaments tournament.Store
	Drafter     drafter.Drafter
	PubSub      pubsub.PubSubClient
	Metrics     metrics.Metrics
	Activity    metrics.MetricsStore
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) { s.clock = clock }
}

// WithTimeout sets the per-call deadline. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}
