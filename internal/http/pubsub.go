package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/pubsub"
)

// NotifyResultHandler receives match-recorded push deliveries.
func (s *Server) NotifyResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.MatchEvent
		if err := s.decodePush(r, &event); err != nil {
			writeError(w, err)
			return
		}
		if err := s.Processor.HandleMatchRecorded(r.Context(), event, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify result", "error", err, "matchID", event.MatchID)
			http.Error(w, "Failed to notify result", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// NotifyTournamentHandler receives tournament-completed push deliveries.
func (s *Server) NotifyTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.TournamentEvent
		if err := s.decodePush(r, &event); err != nil {
			writeError(w, err)
			return
		}
		if err := s.Processor.HandleTournamentCompleted(r.Context(), event, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify tournament", "error", err, "tournamentID", event.TournamentID)
			http.Error(w, "Failed to notify tournament", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}

// PostLeaderboardHandler posts the leaderboard on demand, e.g. from an
// external scheduler.
func (s *Server) PostLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Processor.PostLeaderboard(r.Context(), isDryRunFromContext(r)); err != nil {
			log.Error("Failed to post leaderboard", "error", err)
			http.Error(w, "Failed to post leaderboard", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
