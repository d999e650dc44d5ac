package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/league"
)

func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := s.League.Leaderboard(r.Context())
		if err != nil {
			log.Error("Failed to get leaderboard", "error", err)
			http.Error(w, "Failed to get leaderboard", http.StatusInternalServerError)
			return
		}
		msg, err := s.Notifier.FormatLeaderboardResponse(board)
		if err != nil {
			log.Error("Failed to format leaderboard", "error", err)
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		name := strings.TrimSpace(r.FormValue("text"))
		if name == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", name)
		player, err := s.League.Player(r.Context(), name)
		var msg any
		switch {
		case errors.Is(err, league.ErrNotFound):
			log.Warn("Could not find player", "player", name)
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(name)
		case err != nil:
			log.Error("Failed to look up player", "error", err)
			http.Error(w, "Failed to get player stats", http.StatusInternalServerError)
			return
		default:
			msg, err = s.Notifier.FormatPlayerStatsResponse(player, name)
		}
		if err != nil {
			log.Error("Failed to format player stats", "error", err)
			http.Error(w, "Failed to format player stats", http.StatusInternalServerError)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

// StandingsCommandHandler shows the table of the running tournament.
func (s *Server) StandingsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.League.LatestTournament(r.Context())
		if errors.Is(err, league.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]string{
				"response_type": "ephemeral",
				"text":          "There is no tournament running right now.",
			})
			return
		}
		if err != nil {
			log.Error("Failed to get latest tournament", "error", err)
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			return
		}
		msg, err := s.Notifier.FormatStandingsResponse(t, t.Standings())
		if err != nil {
			log.Error("Failed to format standings", "error", err)
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}
