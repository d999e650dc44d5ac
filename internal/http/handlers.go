package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/puckpal/internal/league"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/mauv0809/puckpal/internal/tournament"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ActivityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counters, err := s.League.Activity(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, counters)
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.League.Players(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := s.League.Leaderboard(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}

func (s *Server) RecomputeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.League.RecomputeAll(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		log.Info("Recomputed all player statistics", "players", len(players))
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := s.League.Matches(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) GetMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := s.League.Match(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, match)
	}
}

func (s *Server) RecordMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub stats.MatchSubmission
		if err := decodeJSON(r, &sub); err != nil {
			writeError(w, err)
			return
		}
		match, err := s.League.RecordMatch(r.Context(), sub, isDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, match)
	}
}

func (s *Server) DeleteMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.League.DeleteMatch(r.Context(), r.PathValue("id"), isDryRunFromContext(r)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// MatchupsHandler lists team splits; team_a and team_b default to 2 and 3.
func (s *Server) MatchupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sizeA, errA := intParam(r, "team_a", league.TeamASize)
		sizeB, errB := intParam(r, "team_b", league.TeamBSize)
		if errA != nil || errB != nil {
			writeError(w, fmt.Errorf("%w: team_a and team_b must be integers", league.ErrValidation))
			return
		}
		matchups, err := s.League.Matchups(r.Context(), sizeA, sizeB)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, matchups)
	}
}

func intParam(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func (s *Server) TeamCombinationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		combos, err := s.League.TeamCombinations(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, combos)
	}
}

func (s *Server) SuggestTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req suggestTeamsRequest
		if r.ContentLength != 0 {
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, err)
				return
			}
		}
		suggestion, err := s.League.SuggestTeams(r.Context(), req.Players)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, suggestion)
	}
}

func (s *Server) CreateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input tournament.DraftInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, err)
			return
		}
		t, err := s.League.CreateTournament(r.Context(), input)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, t)
	}
}

func (s *Server) GetTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.League.Tournament(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) LatestTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.League.LatestTournament(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) CompletedTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.League.CompletedTournaments(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) TournamentStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, standings, err := s.League.TournamentStandings(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

func (s *Server) RecordWinnerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req winnerRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		t, err := s.League.RecordTournamentWinner(r.Context(), r.PathValue("id"), r.PathValue("itemID"), req.Winner)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

func (s *Server) FinalizeTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := s.League.FinalizeTournament(r.Context(), r.PathValue("id"), isDryRunFromContext(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}
