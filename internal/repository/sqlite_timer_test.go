package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/testutil"
)

func TestTimerRepo_DefaultsToIdle(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTimerRepo(database)

	tm, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, tm.Running)
	assert.True(t, tm.StartedAt.IsZero())
	assert.Empty(t, tm.Description)
	assert.Empty(t, tm.Category)
}

func TestTimerRepo_UpsertRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTimerRepo(database)
	ctx := context.Background()

	started := time.Now().Truncate(time.Millisecond)
	tm := &domain.Timer{
		Running:     true,
		StartedAt:   started,
		Description: "drafting",
		Category:    "Portfolio",
	}
	require.NoError(t, repo.Upsert(ctx, tm))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.Running)
	assert.True(t, got.StartedAt.Equal(started))
	assert.Equal(t, "drafting", got.Description)
	assert.Equal(t, "Portfolio", got.Category)
}

func TestTimerRepo_UpsertReplacesSingleRow(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTimerRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &domain.Timer{
		Running: true, StartedAt: time.Now(), Category: "Projects",
	}))
	require.NoError(t, repo.Upsert(ctx, &domain.Timer{}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, got.Running)
	assert.True(t, got.StartedAt.IsZero())
	assert.Empty(t, got.Category)

	var rows int
	require.NoError(t, database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM active_timer`).Scan(&rows))
	assert.Equal(t, 1, rows)
}
