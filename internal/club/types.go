package club

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
)

// executor is satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// store handles all database operations for the club. exec is the database
// itself, or the open transaction when tx is set.
type store struct {
	db   *sql.DB
	exec executor
	tx   *sql.Tx
}

// legacyGoal is the per-player shape of matches recorded before auto goals
// and checks were tracked.
type legacyGoal struct {
	PlayerID string `json:"playerId"`
	Goals    int    `json:"goals"`
}
