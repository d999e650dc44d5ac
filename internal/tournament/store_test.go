package tournament_test

import (
	"context"
	"testing"
	"time"

	"github.com/mauv0809/puckpal/internal/database"
	"github.com/mauv0809/puckpal/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory database and a store on top of it.
func setupTestDB(t *testing.T) tournament.Store {
	t.Helper()
	db, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return tournament.New(db)
}

func newTournament(t *testing.T, name string, createdAt time.Time) *tournament.Tournament {
	t.Helper()
	tour, err := tournament.FromDraft(tournament.Draft{
		TournamentName: name,
		Description:    "Round robin",
		Schedule: []tournament.ScheduleItem{
			{Round: 1, Match: "Alice vs Bob", Participants: []string{"Alice", "Bob"}},
			{Round: 2, Match: "Winner vs Carol"},
		},
		TieBreakingRules: "Head to head",
	}, tournament.DraftInput{
		PlayerNames:   []string{"Alice", "Bob", "Carol"},
		Type:          tournament.TypeSingleElimination,
		ScoringSystem: "Win advances",
	}, createdAt)
	require.NoError(t, err)
	return tour
}

func TestSaveAndGet(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tour := newTournament(t, "Summer Cup", created)

	require.NoError(t, store.Save(ctx, tour))

	got, err := store.Get(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, tour, got)
	assert.Equal(t, "", got.StandingsExplanation)
	assert.Equal(t, []string{}, got.Schedule[1].Participants)
}

func TestGet_NotFound(t *testing.T) {
	store := setupTestDB(t)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, tournament.ErrNotFound)
}

func TestUpdate(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	tour := newTournament(t, "Summer Cup", time.Now())
	require.NoError(t, store.Save(ctx, tour))

	require.NoError(t, tour.RecordWinner(tour.Schedule[0].ID, "Bob"))
	require.NoError(t, store.Update(ctx, tour))

	got, err := store.Get(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.StatusInProgress, got.OverallStatus)
	assert.Equal(t, "Bob", got.Schedule[0].Winner)
	assert.Equal(t, tournament.ItemCompleted, got.Schedule[0].Status)

	missing := newTournament(t, "Ghost Cup", time.Now())
	assert.ErrorIs(t, store.Update(ctx, missing), tournament.ErrNotFound)
}

func TestLatestAndCompleted(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.Latest(ctx)
	assert.ErrorIs(t, err, tournament.ErrNotFound)

	oldNew := newTournament(t, "Old New", base)
	newerNew := newTournament(t, "Newer New", base.Add(2*time.Hour))
	running := newTournament(t, "Running", base.Add(time.Hour))
	running.OverallStatus = tournament.StatusInProgress
	doneFirst := newTournament(t, "Done First", base.Add(-2*time.Hour))
	doneFirst.OverallStatus = tournament.StatusCompleted
	doneLater := newTournament(t, "Done Later", base.Add(-time.Hour))
	doneLater.OverallStatus = tournament.StatusCompleted

	for _, tour := range []*tournament.Tournament{oldNew, newerNew, running, doneFirst, doneLater} {
		require.NoError(t, store.Save(ctx, tour))
	}

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Running", latest.Name, "in-progress wins over newer new tournaments")

	running.OverallStatus = tournament.StatusCompleted
	require.NoError(t, store.Update(ctx, running))

	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Newer New", latest.Name)

	completed, err := store.Completed(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 3)
	assert.Equal(t, "Running", completed[0].Name)
	assert.Equal(t, "Done Later", completed[1].Name)
	assert.Equal(t, "Done First", completed[2].Name)
}
