package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/testutil"
)

func TestTimer_StartStopCommitsSession(t *testing.T) {
	sessRepo, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)
	ctx := context.Background()

	tm, err := svc.Start(ctx, "Projects")
	require.NoError(t, err)
	assert.True(t, tm.Running)
	assert.Equal(t, "Projects", tm.Category)

	require.NoError(t, svc.SetDescription(ctx, "wiring"))

	stop := tm.StartedAt.Add(25 * time.Minute)
	session, err := svc.Stop(ctx, stop)
	require.NoError(t, err)
	assert.Equal(t, "wiring", session.Description)
	assert.Equal(t, "Projects", session.Category)
	assert.Equal(t, 25*time.Minute, session.Duration)
	assert.True(t, session.Timestamp.Equal(stop))

	// The committed row and the reset timer must both be visible.
	all, err := sessRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.False(t, cur.Running)
	assert.Empty(t, cur.Description)
}

func TestTimer_StartWithoutCategoryIsUncategorized(t *testing.T) {
	_, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)
	ctx := context.Background()

	tm, err := svc.Start(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.Uncategorized, tm.Category)
}

func TestTimer_StartWhileRunningIsNoOp(t *testing.T) {
	_, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)
	ctx := context.Background()

	first, err := svc.Start(ctx, "Habits")
	require.NoError(t, err)

	second, err := svc.Start(ctx, "Break")
	require.NoError(t, err)
	assert.Equal(t, "Habits", second.Category)
	assert.True(t, second.StartedAt.Equal(first.StartedAt))
}

func TestTimer_StopWhileIdle(t *testing.T) {
	_, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)

	_, err := svc.Stop(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrTimerNotRunning)
}

func TestTimer_SwitchCategoryOnlyFromUncategorized(t *testing.T) {
	_, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)
	ctx := context.Background()

	_, err := svc.Start(ctx, "")
	require.NoError(t, err)

	switched, err := svc.SwitchCategory(ctx, "Projects")
	require.NoError(t, err)
	assert.True(t, switched)

	// A second switch must be refused now that a real category is set.
	switched, err = svc.SwitchCategory(ctx, "Break")
	require.NoError(t, err)
	assert.False(t, switched)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Projects", cur.Category)
}

func TestTimer_RestartCommitsAndStartsAtomically(t *testing.T) {
	sessRepo, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)
	ctx := context.Background()

	tm, err := svc.Start(ctx, "GRE Prep")
	require.NoError(t, err)

	cutover := tm.StartedAt.Add(40 * time.Minute)
	committed, err := svc.Restart(ctx, "Break", cutover)
	require.NoError(t, err)
	assert.Equal(t, "GRE Prep", committed.Category)
	assert.Equal(t, 40*time.Minute, committed.Duration)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, cur.Running)
	assert.Equal(t, "Break", cur.Category)
	assert.True(t, cur.StartedAt.Equal(cutover), "new interval starts where the old one ended")

	all, err := sessRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTimer_RestartWhileIdle(t *testing.T) {
	_, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)

	_, err := svc.Restart(context.Background(), "Break", time.Now())
	assert.ErrorIs(t, err, ErrTimerNotRunning)
}

func TestTimer_ResumeSeedsFromPastSession(t *testing.T) {
	sessRepo, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)
	ctx := context.Background()

	past := testutil.NewTestSession(15*time.Minute,
		testutil.WithDescription("chapter three"),
		testutil.WithCategory("GRE Prep"))
	require.NoError(t, sessRepo.Create(ctx, past))

	now := time.Now().Truncate(time.Millisecond)
	committed, err := svc.Resume(ctx, past.ID, now)
	require.NoError(t, err)
	assert.Nil(t, committed, "no session to commit when the timer was idle")

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.True(t, cur.Running)
	assert.Equal(t, "chapter three", cur.Description)
	assert.Equal(t, "GRE Prep", cur.Category)
	assert.True(t, cur.StartedAt.Equal(now))
}

func TestTimer_ResumeCommitsRunningTimerFirst(t *testing.T) {
	sessRepo, _, timerRepo, uow := setupRepos(t)
	svc := NewTimerService(timerRepo, uow)
	ctx := context.Background()

	past := testutil.NewTestSession(15*time.Minute, testutil.WithCategory("Health"))
	require.NoError(t, sessRepo.Create(ctx, past))

	tm, err := svc.Start(ctx, "Projects")
	require.NoError(t, err)

	now := tm.StartedAt.Add(10 * time.Minute)
	committed, err := svc.Resume(ctx, past.ID, now)
	require.NoError(t, err)
	require.NotNil(t, committed)
	assert.Equal(t, "Projects", committed.Category)
	assert.Equal(t, 10*time.Minute, committed.Duration)

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Health", cur.Category)

	all, err := sessRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
