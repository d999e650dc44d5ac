package metrics

import (
	"database/sql"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Service holds all the Prometheus metrics for the application.
type Service struct {
	MatchesRecorded      prometheus.Counter
	MatchesDeleted       prometheus.Counter
	RecomputeDuration    prometheus.Histogram
	TournamentsCreated   prometheus.Counter
	TournamentsCompleted prometheus.Counter
	DraftRequests        *prometheus.CounterVec
	DraftFailures        *prometheus.CounterVec
	CollaboratorTimeouts prometheus.Counter
	SlackNotifSent       prometheus.Counter
	SlackNotifFailed     prometheus.Counter
	ScheduledRuns        prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}

// store handles metric-related database operations.
type store struct {
	db *sql.DB
	mu sync.Mutex
}
