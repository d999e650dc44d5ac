package processor

import (
	"github.com/mauv0809/puckpal/internal/metrics"
)

// Processor reacts to league events by notifying the channel.
type Processor struct {
	league   League
	notifier Notifier
	activity metrics.MetricsStore
}
