package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_StartStop(t *testing.T) {
	var tm Timer
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	tm.Start("Study", start)
	require.True(t, tm.Running)
	assert.Equal(t, "Study", tm.Category)
	assert.Equal(t, start, tm.StartedAt)

	end := start.Add(10 * time.Minute)
	span, ok := tm.Stop(end)
	require.True(t, ok)
	assert.False(t, tm.Running)
	assert.Equal(t, 10*time.Minute, span.Duration)
	assert.Equal(t, start, span.Start)
	assert.Equal(t, end, span.End)

	// Fields reset for the next session.
	assert.Empty(t, tm.Description)
	assert.Empty(t, tm.Category)
}

func TestTimer_StartDefaultsToUncategorized(t *testing.T) {
	var tm Timer
	tm.Start("", time.Now())
	assert.Equal(t, Uncategorized, tm.Category)
}

func TestTimer_StartKeepsPreselectedCategory(t *testing.T) {
	tm := Timer{Category: "Health"}
	tm.Start("", time.Now())
	assert.Equal(t, "Health", tm.Category)
}

func TestTimer_StartWhileRunningIsNoOp(t *testing.T) {
	var tm Timer
	first := time.Now()
	tm.Start("A", first)
	tm.Start("B", first.Add(time.Minute))

	assert.Equal(t, "A", tm.Category)
	assert.Equal(t, first, tm.StartedAt)
}

func TestTimer_StopWhileIdle(t *testing.T) {
	var tm Timer
	_, ok := tm.Stop(time.Now())
	assert.False(t, ok)
}

func TestTimer_StopAtStartInstant(t *testing.T) {
	var tm Timer
	now := time.Now()
	tm.Start("", now)

	span, ok := tm.Stop(now)
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), span.Duration)
	assert.Equal(t, span.Start, span.End)
}

func TestTimer_SwitchCategory(t *testing.T) {
	var tm Timer
	tm.Start("", time.Now())
	require.Equal(t, Uncategorized, tm.Category)

	// From the sentinel, switching reassigns in place.
	assert.True(t, tm.SwitchCategory("Projects"))
	assert.Equal(t, "Projects", tm.Category)
	assert.True(t, tm.Running)

	// From a real category the in-place switch is refused; the caller
	// must stop and restart instead.
	assert.False(t, tm.SwitchCategory("Break"))
	assert.Equal(t, "Projects", tm.Category)
}

func TestTimer_SwitchCategoryWhileIdle(t *testing.T) {
	var tm Timer
	assert.False(t, tm.SwitchCategory("Projects"))
}

func TestTimer_Resume(t *testing.T) {
	s := NewSession("id-1", "essay draft", "Portfolio", time.Now().Add(-time.Hour), time.Now().Add(-30*time.Minute))

	var tm Timer
	now := time.Now()
	tm.Resume(s, now)

	assert.True(t, tm.Running)
	assert.Equal(t, "essay draft", tm.Description)
	assert.Equal(t, "Portfolio", tm.Category)
	assert.Equal(t, now, tm.StartedAt)
}

func TestTimer_Elapsed(t *testing.T) {
	var tm Timer
	assert.Equal(t, time.Duration(0), tm.Elapsed(time.Now()), "idle timer shows zero")

	start := time.Now()
	tm.Start("", start)
	assert.Equal(t, 90*time.Second, tm.Elapsed(start.Add(90*time.Second)))
}
