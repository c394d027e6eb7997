package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/testutil"
)

func TestTUI_TimerViewLoadsOnStartup(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewTimer, d.ActiveViewID())
	view := d.View()
	assert.NotContains(t, view, "Loading...")
	assert.Contains(t, view, "00:00:00")
	assert.Contains(t, view, "idle")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_TabSwitching(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.Press('2')
	assert.Equal(t, ViewLogs, d.ActiveViewID())
	d.Press('3')
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	d.Press('4')
	assert.Equal(t, ViewCalendar, d.ActiveViewID())
	d.Press('5')
	assert.Equal(t, ViewCategories, d.ActiveViewID())
	d.Press('1')
	assert.Equal(t, ViewTimer, d.ActiveViewID())
}

func TestTUI_StartAndStopTimer(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Categories.EnsureSeed(context.Background()))
	d := NewTestDriver(t, app)

	d.Press('s')
	assert.Contains(t, d.View(), "tracking")

	cur, err := app.Timer.Current(context.Background())
	require.NoError(t, err)
	assert.True(t, cur.Running)
	assert.Equal(t, "GRE Prep", cur.Category, "first seed category is preselected")

	d.Press('s')
	cur, err = app.Timer.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, cur.Running)

	sessions, err := app.Sessions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "GRE Prep", sessions[0].Category)
}

func TestTUI_StartWithoutCategoriesIsUncategorized(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press('s')

	cur, err := app.Timer.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Uncategorized, cur.Category)
}

func TestTUI_DescriptionAppliedOnStart(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press('d')
	d.Type("reading notes")
	d.PressEnter()
	d.Press('s')

	cur, err := app.Timer.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "reading notes", cur.Description)
}

func TestTUI_LogsViewShowsSessions(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	s := testutil.NewTestSession(20*time.Minute, testutil.WithDescription("deep focus"))
	require.NoError(t, app.SessionRepo.Create(ctx, s))

	d := NewTestDriver(t, app)
	d.Press('2')

	view := d.View()
	assert.Contains(t, view, "deep focus")
	assert.Contains(t, view, "page 1/1")
}

func TestTUI_LogsDetailPushAndPop(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	s := testutil.NewTestSession(20*time.Minute, testutil.WithDescription("deep focus"))
	require.NoError(t, app.SessionRepo.Create(ctx, s))

	d := NewTestDriver(t, app)
	d.Press('2')
	d.PressEnter()

	require.Equal(t, 2, d.ViewStackLen())
	assert.Equal(t, ViewSessionDetail, d.ActiveViewID())
	view := d.View()
	assert.Contains(t, view, "deep focus")
	assert.Contains(t, view, "20m")

	d.PressEsc()
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, ViewLogs, d.ActiveViewID())
}

func TestTUI_LogsDeleteWithConfirm(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	s := testutil.NewTestSession(20 * time.Minute)
	require.NoError(t, app.SessionRepo.Create(ctx, s))

	d := NewTestDriver(t, app)
	d.Press('2')

	// 'n' declines.
	d.Press('x')
	d.Press('n')
	all, err := app.Sessions.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// 'y' deletes.
	d.Press('x')
	d.Press('y')
	all, err = app.Sessions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Contains(t, d.View(), "No sessions logged yet.")
}

func TestTUI_LogsEditDescription(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	s := testutil.NewTestSession(20*time.Minute, testutil.WithDescription("old"))
	require.NoError(t, app.SessionRepo.Create(ctx, s))

	d := NewTestDriver(t, app)
	d.Press('2')
	d.Press('e')
	// The input starts prefilled with the current description.
	for range "old" {
		d.Send(backspaceKey())
	}
	d.Type("new words")
	d.PressEnter()

	got, err := app.Sessions.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "new words", got.Description)
}

func TestTUI_DashboardRangeToggle(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press('3')
	assert.Contains(t, d.View(), "Last 24 hours")

	d.Send(tabKey())
	assert.Contains(t, d.View(), "Last week")
	d.Send(tabKey())
	assert.Contains(t, d.View(), "All time")
	d.Send(tabKey())
	assert.Contains(t, d.View(), "Last 24 hours")
}

func TestTUI_DashboardShowsCategoryTotals(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.SessionRepo.Create(ctx,
		testutil.NewTestSession(time.Hour, testutil.WithCategory("Projects"))))

	d := NewTestDriver(t, app)
	d.Press('3')

	view := d.View()
	assert.Contains(t, view, "Projects")
	assert.Contains(t, view, "100%")
}

func TestTUI_CalendarZoomCycle(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Press('4')

	assert.Contains(t, d.View(), time.Now().Format("Monday, Jan 2 2006"))
	d.Press('z')
	assert.Contains(t, d.View(), "Week of")
	d.Press('z')
	assert.Contains(t, d.View(), time.Now().Format("January 2006"))
}

func TestTUI_TallViewClipsToWindowHeight(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Send(tea.WindowSizeMsg{Width: 80, Height: 12})
	d.Press('4')
	d.Press('z')
	d.Press('z')
	d.Press('z') // year view runs well past twelve rows

	out := strings.TrimRight(d.View(), "\n")
	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 12)
	assert.Contains(t, out, "⋯")
}

func TestTUI_CategoriesAddAtLimitRefused(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	for i := 0; i < domain.MaxCategories; i++ {
		_, err := app.Categories.Add(ctx, string(rune('A'+i)), domain.IconBook)
		require.NoError(t, err)
	}

	d := NewTestDriver(t, app)
	d.Press('5')
	d.Press('a')

	assert.Contains(t, d.View(), "Registry is full")
	cats, err := app.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, domain.MaxCategories)
}

func TestTUI_CategoriesAdd(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.Press('5')
	d.Press('a')
	d.Type("Reading")
	d.PressEnter()

	cats, err := app.Categories.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Reading", cats[0].Name)
}
