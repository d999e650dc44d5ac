package metrics

import "context"

// Metrics defines the interface for collecting application metrics.
type Metrics interface {
	IncMatchesRecorded()
	IncMatchesDeleted()
	ObserveRecomputeDuration(duration float64)
	IncTournamentsCreated()
	IncTournamentsCompleted()
	IncDraftRequests(kind string)
	IncDraftFailures(kind string)
	IncCollaboratorTimeouts()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncScheduledRuns()
	SetStartupTime(duration float64)
}

// MetricsStore keeps lifetime activity counters in the database so they
// survive restarts, unlike the Prometheus series.
type MetricsStore interface {
	Increment(ctx context.Context, key string)
	GetAll(ctx context.Context) (map[string]int, error)
}

// Activity counter keys.
const (
	KeyMatchesRecorded      = "matches_recorded"
	KeyMatchesDeleted       = "matches_deleted"
	KeyTournamentsCreated   = "tournaments_created"
	KeyTournamentsCompleted = "tournaments_completed"
	KeyLeaderboardPosts     = "leaderboard_posts"
)
