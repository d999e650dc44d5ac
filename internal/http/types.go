package http

import (
	"context"
	"net/http"

	"github.com/mauv0809/puckpal/internal/config"
	"github.com/mauv0809/puckpal/internal/drafter"
	"github.com/mauv0809/puckpal/internal/notifier"
	"github.com/mauv0809/puckpal/internal/processor"
	"github.com/mauv0809/puckpal/internal/pubsub"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
)

// League is the part of league.Service the HTTP surface uses.
type League interface {
	Players(ctx context.Context) ([]stats.Player, error)
	Player(ctx context.Context, name string) (*stats.Player, error)
	Leaderboard(ctx context.Context) ([]stats.Player, error)
	Matches(ctx context.Context) ([]stats.Match, error)
	Match(ctx context.Context, id string) (*stats.Match, error)
	RecordMatch(ctx context.Context, sub stats.MatchSubmission, dryRun bool) (*stats.Match, error)
	DeleteMatch(ctx context.Context, id string, dryRun bool) error
	RecomputeAll(ctx context.Context) ([]stats.Player, error)
	Matchups(ctx context.Context, sizeA, sizeB int) ([]stats.GeneratedMatchup, error)
	TeamCombinations(ctx context.Context) ([]stats.CombinationStats, error)
	SuggestTeams(ctx context.Context, names []string) (*drafter.TeamSuggestion, error)
	CreateTournament(ctx context.Context, input tournament.DraftInput) (*tournament.Tournament, error)
	Tournament(ctx context.Context, id string) (*tournament.Tournament, error)
	LatestTournament(ctx context.Context) (*tournament.Tournament, error)
	CompletedTournaments(ctx context.Context) ([]*tournament.Tournament, error)
	TournamentStandings(ctx context.Context, id string) (*tournament.Tournament, []tournament.PlayerScore, error)
	RecordTournamentWinner(ctx context.Context, id, itemID, winner string) (*tournament.Tournament, error)
	FinalizeTournament(ctx context.Context, id string, dryRun bool) (*tournament.Tournament, error)
	Activity(ctx context.Context) (map[string]int, error)
}

type Server struct {
	League         League
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}

// suggestTeamsRequest is the body of POST /suggest-teams.
type suggestTeamsRequest struct {
	Players []string `json:"players"`
}

// winnerRequest is the body of POST /tournaments/{id}/items/{itemID}/winner.
type winnerRequest struct {
	Winner string `json:"winner"`
}

// pushMessage is the envelope of a Pub/Sub push delivery.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"`
	} `json:"message"`
}

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error  string   `json:"error"`
	Issues []string `json:"issues,omitempty"`
}
