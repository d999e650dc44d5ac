package club_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/puckpal/internal/club"
	"github.com/mauv0809/puckpal/internal/database"
	"github.com/mauv0809/puckpal/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (club.ClubStore, *sql.DB) {
	t.Helper()

	db, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return club.New(db), db
}

func seedRoster(t *testing.T, store club.ClubStore) []stats.Player {
	t.Helper()
	roster := []stats.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
		{ID: "p3", Name: "Carol"},
		{ID: "p4", Name: "Dave"},
		{ID: "p5", Name: "Eve"},
	}
	added, err := store.SeedPlayers(context.Background(), roster)
	require.NoError(t, err)
	require.Equal(t, 5, added)
	return roster
}

func sampleMatch(date time.Time) stats.Match {
	return stats.Match{
		Date:           date,
		TeamA:          stats.TeamDetails{PlayerIDs: []string{"p1", "p2"}, Score: 10},
		TeamB:          stats.TeamDetails{PlayerIDs: []string{"p3", "p4", "p5"}, Score: 7},
		WinningTeamIDs: []string{"p1", "p2"},
		PlayerStats: []stats.PlayerMatchStats{
			{PlayerID: "p1", Goals: 6, Checks: 1},
			{PlayerID: "p2", Goals: 4},
			{PlayerID: "p3", Goals: 3},
			{PlayerID: "p4", Goals: 2, AutoGoals: 1},
			{PlayerID: "p5", Goals: 2},
		},
	}
}

func TestSeedAndListPlayers(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()
	seedRoster(t, store)

	added, err := store.SeedPlayers(ctx, []stats.Player{{ID: "p1", Name: "Alice"}, {Name: "Frank"}})
	require.NoError(t, err)
	assert.Equal(t, 1, added, "known players are skipped")

	players, err := store.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 6)
	assert.Equal(t, "Alice", players[0].Name)
	assert.Equal(t, "Frank", players[5].Name)
	assert.NotEmpty(t, players[5].ID)
	assert.Zero(t, players[5].GamesPlayed)
}

func TestGetPlayerByName(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()
	seedRoster(t, store)
	_, err := store.SeedPlayers(ctx, []stats.Player{{ID: "p6", Name: "Jörgen Ström"}})
	require.NoError(t, err)

	p, err := store.GetPlayerByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	p, err = store.GetPlayerByName(ctx, "aro")
	require.NoError(t, err)
	assert.Equal(t, "Carol", p.Name)

	p, err = store.GetPlayerByName(ctx, "jorgen strom")
	require.NoError(t, err)
	assert.Equal(t, "p6", p.ID)

	_, err = store.GetPlayerByName(ctx, "Zed")
	assert.ErrorIs(t, err, club.ErrPlayerNotFound)
}

func TestGetPlayerByName_WildcardsAreLiteral(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()
	seedRoster(t, store)
	_, err := store.SeedPlayers(ctx, []stats.Player{{ID: "p7", Name: "Dj_Puck"}})
	require.NoError(t, err)

	for _, query := range []string{"%", "_", "%%", `\`} {
		_, err := store.GetPlayerByName(ctx, query)
		assert.ErrorIs(t, err, club.ErrPlayerNotFound, "query %q", query)
	}

	p, err := store.GetPlayerByName(ctx, "j_p")
	require.NoError(t, err)
	assert.Equal(t, "p7", p.ID)
}

func TestAddGetDeleteMatch(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()
	seedRoster(t, store)
	date := time.Date(2024, 2, 9, 18, 30, 0, 0, time.UTC)

	id, err := store.AddMatch(ctx, sampleMatch(date))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetMatch(ctx, id)
	require.NoError(t, err)
	want := sampleMatch(date)
	want.ID = id
	assert.Equal(t, want, *got)

	require.NoError(t, store.DeleteMatch(ctx, id))
	_, err = store.GetMatch(ctx, id)
	assert.ErrorIs(t, err, club.ErrMatchNotFound)
	assert.ErrorIs(t, store.DeleteMatch(ctx, id), club.ErrMatchNotFound)
}

func TestListMatches_NewestFirst(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()
	seedRoster(t, store)
	base := time.Date(2024, 2, 9, 18, 0, 0, 0, time.UTC)

	older, err := store.AddMatch(ctx, sampleMatch(base))
	require.NoError(t, err)
	newer, err := store.AddMatch(ctx, sampleMatch(base.Add(7*24*time.Hour)))
	require.NoError(t, err)

	matches, err := store.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, newer, matches[0].ID)
	assert.Equal(t, older, matches[1].ID)
}

func TestListMatches_NormalisesLegacyGoals(t *testing.T) {
	store, db := setupTestDB(t)
	ctx := context.Background()
	seedRoster(t, store)

	_, err := db.Exec(`
		INSERT INTO matches (id, played_at, team_a_ids, team_a_score, team_b_ids, team_b_score,
			winning_team_ids, player_goals_json, created_at)
		VALUES ('legacy', 0, '["p1","p2"]', 10, '["p3","p4","p5"]', 3, '["p1","p2"]',
			'[{"playerId":"p1","goals":7},{"playerId":"p3","goals":3}]', 0)`)
	require.NoError(t, err)

	matches, err := store.ListMatches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, []stats.PlayerMatchStats{
		{PlayerID: "p1", Goals: 7},
		{PlayerID: "p3", Goals: 3},
	}, matches[0].PlayerStats)
	assert.Equal(t, []string{"p1", "p2"}, matches[0].WinningTeamIDs)
}

func TestPersistPlayers(t *testing.T) {
	store, _ := setupTestDB(t)
	ctx := context.Background()
	roster := seedRoster(t, store)

	updated := stats.Recompute(roster, []stats.Match{sampleMatch(time.Now())})
	require.NoError(t, store.PersistPlayers(ctx, updated))

	players, err := store.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, players)
}

func TestAtomically(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		store, _ := setupTestDB(t)
		ctx := context.Background()
		seedRoster(t, store)

		err := store.Atomically(ctx, func(tx club.ClubStore) error {
			if _, err := tx.AddMatch(ctx, sampleMatch(time.Now())); err != nil {
				return err
			}
			matches, err := tx.ListMatches(ctx)
			if err != nil {
				return err
			}
			players, err := tx.ListPlayers(ctx)
			if err != nil {
				return err
			}
			return tx.PersistPlayers(ctx, stats.Recompute(players, matches))
		})
		require.NoError(t, err)

		players, err := store.ListPlayers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, players[0].Wins)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		store, _ := setupTestDB(t)
		ctx := context.Background()
		seedRoster(t, store)
		boom := errors.New("boom")

		err := store.Atomically(ctx, func(tx club.ClubStore) error {
			if _, err := tx.AddMatch(ctx, sampleMatch(time.Now())); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		matches, err := store.ListMatches(ctx)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}
