package tournament

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a tournament Store backed by db.
func New(db *sql.DB) Store {
	return &store{db: db}
}

const selectColumns = `
	SELECT id, name, slug, description, player_names, tournament_type, scoring_system,
		schedule_blob, standings_explanation, advancement_rules, tie_breaking_rules,
		overall_status, created_at
	FROM tournaments`

// Save inserts a new tournament.
func (s *store) Save(ctx context.Context, t *Tournament) error {
	names, schedule, err := encode(t)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tournaments (id, name, slug, description, player_names, tournament_type, scoring_system,
			schedule_blob, standings_explanation, advancement_rules, tie_breaking_rules, overall_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Slug, t.Description, string(names), string(t.Type), t.ScoringSystem,
		schedule, t.StandingsExplanation, t.AdvancementRules, t.TieBreakingRules,
		string(t.OverallStatus), t.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tournament %s: %w", t.ID, err)
	}
	log.Debug("Saved tournament", "tournamentID", t.ID, "items", len(t.Schedule))
	return nil
}

// Update overwrites the mutable parts of a stored tournament: its schedule
// and overall status.
func (s *store) Update(ctx context.Context, t *Tournament) error {
	_, schedule, err := encode(t)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE tournaments SET schedule_blob = ?, overall_status = ? WHERE id = ?`,
		schedule, string(t.OverallStatus), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tournament %s: %w", t.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, t.ID)
	}
	return nil
}

// Get returns a tournament by id.
func (s *store) Get(ctx context.Context, id string) (*Tournament, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	t, err := scanTournament(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, err
}

// Latest returns the tournament currently being played.
func (s *store) Latest(ctx context.Context) (*Tournament, error) {
	for _, status := range []Status{StatusInProgress, StatusNew} {
		row := s.db.QueryRowContext(ctx,
			selectColumns+` WHERE overall_status = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
			string(status),
		)
		t, err := scanTournament(row)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		return t, err
	}
	return nil, ErrNotFound
}

// Completed lists finished tournaments, newest first.
func (s *store) Completed(ctx context.Context) ([]*Tournament, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE overall_status = ? ORDER BY created_at DESC, rowid DESC`,
		string(StatusCompleted),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := []*Tournament{}
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

func encode(t *Tournament) ([]byte, []byte, error) {
	names, err := json.Marshal(t.PlayerNames)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal player names: %w", err)
	}
	schedule, err := msgpack.Marshal(t.Schedule)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal schedule: %w", err)
	}
	return names, schedule, nil
}

// scanTournament reads one row selected with selectColumns.
func scanTournament(scanner interface{ Scan(...any) error }) (*Tournament, error) {
	var (
		t                  Tournament
		tType, status      string
		names, schedule    []byte
		description        sql.NullString
		standings, advance sql.NullString
		tieBreaking        sql.NullString
		createdAt          int64
	)
	err := scanner.Scan(
		&t.ID, &t.Name, &t.Slug, &description, &names, &tType, &t.ScoringSystem,
		&schedule, &standings, &advance, &tieBreaking, &status, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	t.Type = Type(tType)
	t.OverallStatus = Status(status)
	if t.OverallStatus == "" {
		t.OverallStatus = StatusNew
	}
	t.Description = description.String
	t.StandingsExplanation = standings.String
	t.AdvancementRules = advance.String
	t.TieBreakingRules = tieBreaking.String
	t.CreatedAt = time.UnixMilli(createdAt).UTC()

	if len(names) > 0 {
		if err := json.Unmarshal(names, &t.PlayerNames); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player names for %s: %w", t.ID, err)
		}
	}
	if len(schedule) > 0 {
		if err := msgpack.Unmarshal(schedule, &t.Schedule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schedule for %s: %w", t.ID, err)
		}
	}
	if t.PlayerNames == nil {
		t.PlayerNames = []string{}
	}
	if t.Schedule == nil {
		t.Schedule = []ScheduleItem{}
	}
	for i := range t.Schedule {
		if t.Schedule[i].Status == "" {
			t.Schedule[i].Status = ItemPending
		}
		if t.Schedule[i].Participants == nil {
			t.Schedule[i].Participants = []string{}
		}
	}
	return &t, nil
}
