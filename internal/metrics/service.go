package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_matches_recorded_total",
			Help: "The total number of matches recorded.",
		}),
		MatchesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_matches_deleted_total",
			Help: "The total number of matches deleted.",
		}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "puckpal_stats_recompute_duration_seconds",
			Help:    "The duration of a full player statistics recomputation.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		TournamentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_tournaments_created_total",
			Help: "The total number of tournaments created.",
		}),
		TournamentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_tournaments_completed_total",
			Help: "The total number of tournaments finalized.",
		}),
		DraftRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "puckpal_draft_requests_total",
			Help: "The total number of requests sent to the drafting model.",
		}, []string{"kind"}),
		DraftFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "puckpal_draft_failures_total",
			Help: "The total number of failed requests to the drafting model.",
		}, []string{"kind"}),
		CollaboratorTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_collaborator_timeouts_total",
			Help: "The total number of operations that hit their deadline.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		ScheduledRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "puckpal_scheduled_runs_total",
			Help: "The total number of scheduled leaderboard posts.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "puckpal_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesRecorded,
		s.MatchesDeleted,
		s.RecomputeDuration,
		s.TournamentsCreated,
		s.TournamentsCompleted,
		s.DraftRequests,
		s.DraftFailures,
		s.CollaboratorTimeouts,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.ScheduledRuns,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesRecorded() {
	s.MatchesRecorded.Inc()
}

func (s *Service) IncMatchesDeleted() {
	s.MatchesDeleted.Inc()
}

func (s *Service) ObserveRecomputeDuration(duration float64) {
	s.RecomputeDuration.Observe(duration)
}

func (s *Service) IncTournamentsCreated() {
	s.TournamentsCreated.Inc()
}

func (s *Service) IncTournamentsCompleted() {
	s.TournamentsCompleted.Inc()
}

func (s *Service) IncDraftRequests(kind string) {
	s.DraftRequests.WithLabelValues(kind).Inc()
}

func (s *Service) IncDraftFailures(kind string) {
	s.DraftFailures.WithLabelValues(kind).Inc()
}

func (s *Service) IncCollaboratorTimeouts() {
	s.CollaboratorTimeouts.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncScheduledRuns() {
	s.ScheduledRuns.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
