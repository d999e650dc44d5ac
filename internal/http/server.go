package http

import (
	"net/http"

	"github.com/mauv0809/puckpal/internal/config"
	"github.com/mauv0809/puckpal/internal/notifier"
	"github.com/mauv0809/puckpal/internal/processor"
	"github.com/mauv0809/puckpal/internal/pubsub"
)

func NewServer(league League, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		League:         league,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	slackAuth := slackVerificationMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /activity", Chain(s.ActivityHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("GET /leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("POST /recompute", Chain(s.RecomputeHandler(), paramsMiddleware))

	s.Router.Handle("GET /matches", Chain(s.ListMatchesHandler(), paramsMiddleware))
	s.Router.Handle("POST /matches", Chain(s.RecordMatchHandler(), paramsMiddleware))
	s.Router.Handle("GET /matches/{id}", Chain(s.GetMatchHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /matches/{id}", Chain(s.DeleteMatchHandler(), paramsMiddleware))

	s.Router.Handle("GET /matchups", Chain(s.MatchupsHandler(), paramsMiddleware))
	s.Router.Handle("GET /team-combinations", Chain(s.TeamCombinationsHandler(), paramsMiddleware))
	s.Router.Handle("POST /suggest-teams", Chain(s.SuggestTeamsHandler(), paramsMiddleware))

	s.Router.Handle("POST /tournaments", Chain(s.CreateTournamentHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/latest", Chain(s.LatestTournamentHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/completed", Chain(s.CompletedTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/{id}", Chain(s.GetTournamentHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/{id}/standings", Chain(s.TournamentStandingsHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/{id}/items/{itemID}/winner", Chain(s.RecordWinnerHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/{id}/finalize", Chain(s.FinalizeTournamentHandler(), paramsMiddleware))

	s.Router.Handle("POST /notify-result", Chain(s.NotifyResultHandler(), paramsMiddleware))
	s.Router.Handle("POST /notify-tournament", Chain(s.NotifyTournamentHandler(), paramsMiddleware))
	s.Router.Handle("POST /post-leaderboard", Chain(s.PostLeaderboardHandler(), paramsMiddleware))

	s.Router.Handle("POST /slack/command/leaderboard", Chain(s.LeaderboardCommandHandler(), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /slack/command/player-stats", Chain(s.PlayerStatsCommandHandler(), paramsMiddleware, slackAuth))
	s.Router.Handle("POST /slack/command/standings", Chain(s.StandingsCommandHandler(), paramsMiddleware, slackAuth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
