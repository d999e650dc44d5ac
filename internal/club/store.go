package club

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new ClubStore.
func New(db *sql.DB) ClubStore {
	return &store{
		db:   db,
		exec: db,
	}
}

// Atomically runs fn inside one transaction. Nested calls reuse the
// transaction that is already open.
func (s *store) Atomically(ctx context.Context, fn func(ClubStore) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(&store{db: s.db, exec: tx, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error("Failed to roll back transaction", "error", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const playerColumns = `
	SELECT id, name, total_goals, total_auto_goals, total_checks, wins, losses, total_points,
		games_played, win_loss_ratio, team_goals_scored, team_goals_conceded, team_goal_difference
	FROM players`

// ListPlayers returns the roster in the order players were added.
func (s *store) ListPlayers(ctx context.Context) ([]stats.Player, error) {
	rows, err := s.exec.QueryContext(ctx, playerColumns+` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []stats.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// likeEscaper makes user input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// GetPlayerByName finds a player by exact name, then by a case-insensitive
// substring ("ali" matches "Alice"), then by name similarity.
func (s *store) GetPlayerByName(ctx context.Context, name string) (*stats.Player, error) {
	row := s.exec.QueryRowContext(ctx, playerColumns+` WHERE name = ? COLLATE NOCASE LIMIT 1`, name)
	p, err := scanPlayer(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query player %q: %w", name, err)
	}

	pattern := "%" + likeEscaper.Replace(name) + "%"
	row = s.exec.QueryRowContext(ctx, playerColumns+` WHERE name LIKE ? ESCAPE '\' ORDER BY rowid LIMIT 1`, pattern)
	p, err = scanPlayer(row)
	if err == nil {
		log.Debug("Found player by pattern", "pattern", pattern, "player", p.Name)
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to query player %q: %w", name, err)
	}

	players, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if match, ok := BestMatch(name, players); ok {
		log.Debug("Found player by similarity", "query", name, "player", match.Player.Name, "confidence", match.Confidence)
		return &match.Player, nil
	}
	log.Info("No player matching name", "name", name)
	return nil, fmt.Errorf("%w: %q", ErrPlayerNotFound, name)
}

// SeedPlayers adds roster members that are not known yet, with zero stats.
// Players whose id or name already exists are skipped. It returns how many
// were added.
func (s *store) SeedPlayers(ctx context.Context, players []stats.Player) (int, error) {
	added := 0
	err := s.Atomically(ctx, func(cs ClubStore) error {
		txs := cs.(*store)
		stmt, err := txs.exec.PrepareContext(ctx, `INSERT OR IGNORE INTO players (id, name) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare player insert: %w", err)
		}
		defer stmt.Close()

		for _, p := range players {
			id := p.ID
			if id == "" {
				id = uuid.NewString()
			}
			res, err := stmt.ExecContext(ctx, id, p.Name)
			if err != nil {
				return fmt.Errorf("failed to insert player %q: %w", p.Name, err)
			}
			if n, err := res.RowsAffected(); err == nil {
				added += int(n)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Info("Seeded players", "requested", len(players), "added", added)
	return added, nil
}

// PersistPlayers writes the derived statistics of every given player.
func (s *store) PersistPlayers(ctx context.Context, players []stats.Player) error {
	return s.Atomically(ctx, func(cs ClubStore) error {
		txs := cs.(*store)
		stmt, err := txs.exec.PrepareContext(ctx, `
			UPDATE players SET
				total_goals = ?, total_auto_goals = ?, total_checks = ?, wins = ?, losses = ?,
				total_points = ?, games_played = ?, win_loss_ratio = ?, team_goals_scored = ?,
				team_goals_conceded = ?, team_goal_difference = ?
			WHERE id = ?`)
		if err != nil {
			return fmt.Errorf("failed to prepare player update: %w", err)
		}
		defer stmt.Close()

		for _, p := range players {
			_, err := stmt.ExecContext(ctx,
				p.TotalGoals, p.TotalAutoGoals, p.TotalChecks, p.Wins, p.Losses,
				p.TotalPoints, p.GamesPlayed, p.WinLossRatio, p.TeamGoalsScored,
				p.TeamGoalsConceded, p.TeamGoalDifference, p.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to update player %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

const matchColumns = `
	SELECT id, played_at, team_a_ids, team_a_score, team_b_ids, team_b_score,
		winning_team_ids, player_stats, player_goals_json
	FROM matches`

// ListMatches returns the full match history, most recent first.
func (s *store) ListMatches(ctx context.Context) ([]stats.Match, error) {
	rows, err := s.exec.QueryContext(ctx, matchColumns+` ORDER BY played_at DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []stats.Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

// GetMatch returns a single match by id.
func (s *store) GetMatch(ctx context.Context, id string) (*stats.Match, error) {
	m, err := scanMatch(s.exec.QueryRowContext(ctx, matchColumns+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query match %s: %w", id, err)
	}
	return m, nil
}

// AddMatch stores a match and returns its id, generating one when unset.
func (s *store) AddMatch(ctx context.Context, match stats.Match) (string, error) {
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	teamA, err := json.Marshal(match.TeamA.PlayerIDs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal team A: %w", err)
	}
	teamB, err := json.Marshal(match.TeamB.PlayerIDs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal team B: %w", err)
	}
	winners, err := json.Marshal(match.WinningTeamIDs)
	if err != nil {
		return "", fmt.Errorf("failed to marshal winners: %w", err)
	}
	playerStats, err := msgpack.Marshal(match.PlayerStats)
	if err != nil {
		return "", fmt.Errorf("failed to marshal player stats: %w", err)
	}

	_, err = s.exec.ExecContext(ctx, `
		INSERT INTO matches (id, played_at, team_a_ids, team_a_score, team_b_ids, team_b_score,
			winning_team_ids, player_stats, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		match.ID, match.Date.UnixMilli(), string(teamA), match.TeamA.Score, string(teamB), match.TeamB.Score,
		string(winners), playerStats, time.Now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}
	log.Debug("Inserted match", "matchID", match.ID)
	return match.ID, nil
}

// DeleteMatch removes a match. Deleting an unknown id is an error.
func (s *store) DeleteMatch(ctx context.Context, id string) error {
	res, err := s.exec.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	return nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*stats.Player, error) {
	var p stats.Player
	err := scanner.Scan(
		&p.ID, &p.Name, &p.TotalGoals, &p.TotalAutoGoals, &p.TotalChecks, &p.Wins, &p.Losses,
		&p.TotalPoints, &p.GamesPlayed, &p.WinLossRatio, &p.TeamGoalsScored,
		&p.TeamGoalsConceded, &p.TeamGoalDifference,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanMatch reads one match row. Rows written before per-player stats were
// stored carry only goals; their auto goals and checks read as zero.
func scanMatch(scanner interface{ Scan(...any) error }) (*stats.Match, error) {
	var (
		m                     stats.Match
		playedAt              int64
		teamA, teamB, winners string
		playerStats           []byte
		legacyGoals           sql.NullString
	)
	err := scanner.Scan(
		&m.ID, &playedAt, &teamA, &m.TeamA.Score, &teamB, &m.TeamB.Score,
		&winners, &playerStats, &legacyGoals,
	)
	if err != nil {
		return nil, err
	}
	m.Date = time.UnixMilli(playedAt).UTC()

	for _, f := range []struct {
		raw string
		dst *[]string
	}{{teamA, &m.TeamA.PlayerIDs}, {teamB, &m.TeamB.PlayerIDs}, {winners, &m.WinningTeamIDs}} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ids for match %s: %w", m.ID, err)
		}
	}

	switch {
	case len(playerStats) > 0:
		if err := msgpack.Unmarshal(playerStats, &m.PlayerStats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player stats for match %s: %w", m.ID, err)
		}
	case legacyGoals.Valid && legacyGoals.String != "":
		var goals []legacyGoal
		if err := json.Unmarshal([]byte(legacyGoals.String), &goals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal legacy goals for match %s: %w", m.ID, err)
		}
		for _, g := range goals {
			m.PlayerStats = append(m.PlayerStats, stats.PlayerMatchStats{PlayerID: g.PlayerID, Goals: g.Goals})
		}
	}
	if m.PlayerStats == nil {
		m.PlayerStats = []stats.PlayerMatchStats{}
	}
	return &m, nil
}
