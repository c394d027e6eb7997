package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikk-app/tikk/internal/db"
	"github.com/tikk-app/tikk/internal/repository"
	"github.com/tikk-app/tikk/internal/service"
	"github.com/tikk-app/tikk/internal/teatest"
	"github.com/tikk-app/tikk/internal/testutil"
	"go.uber.org/zap"
)

// testApp wires an App over an in-memory database.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	timerRepo := repository.NewSQLiteTimerRepo(database)
	uow := db.NewUnitOfWork(database)

	return &App{
		Sessions:     service.NewSessionService(sessionRepo),
		Categories:   service.NewCategoryService(categoryRepo),
		Timer:        service.NewTimerService(timerRepo, uow),
		SessionRepo:  sessionRepo,
		CategoryRepo: categoryRepo,
		UoW:          uow,
		Logger:       zap.NewNop(),
	}
}

// TestDriver wraps the synchronous driver with model inspection.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and
// drains Init() so the home view loads.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), 120, 40)
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// ViewStackLen returns the navigation stack depth.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// IsQuitting reports whether the model or runtime saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}

func tabKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

func backspaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyBackspace}
}
