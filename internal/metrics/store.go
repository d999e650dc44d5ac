package metrics

import (
	"context"
	"database/sql"

	"github.com/charmbracelet/log"
)

// New creates a new metrics Store.
func New(db *sql.DB) MetricsStore {
	return &store{
		db: db,
	}
}

// Increment upserts a counter key and increments its value by one.
// Failures are logged and swallowed: a lost activity count never fails the
// operation that produced it.
func (s *store) Increment(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metrics (key, value) VALUES (?, 1)
		ON CONFLICT(key) DO UPDATE SET value = value + 1
	`, key)
	if err != nil {
		log.Error("Failed to increment activity counter", "error", err, "key", key)
		return
	}
	log.Debug("Incremented activity counter", "key", key)
}

// GetAll returns all activity counters.
func (s *store) GetAll(ctx context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM metrics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counters := make(map[string]int)
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		counters[key] = value
	}
	return counters, rows.Err()
}
