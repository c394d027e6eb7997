package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikk-app/tikk/internal/calendar"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
)

// ── messages ─────────────────────────────────────────────────────────────────

type calendarLoadedMsg struct {
	sessions []*domain.Session
	err      error
}

// ── view ─────────────────────────────────────────────────────────────────────

// calendarView browses the log anchored to a selected date, with
// day/week/month/year zoom levels.
type calendarView struct {
	state *SharedState

	selected    time.Time
	granularity calendar.Granularity
	sessions    []*domain.Session

	loading bool
	err     error
}

func newCalendarView(state *SharedState) *calendarView {
	selected, g := calendar.Today(time.Now())
	return &calendarView{
		state:       state,
		selected:    selected,
		granularity: g,
		loading:     true,
	}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "prev/next")),
		key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "zoom in")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return v.loadData()
}

func (v *calendarView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		sessions, err := app.Sessions.List(context.Background())
		return calendarLoadedMsg{sessions: sessions, err: err}
	}
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.sessions = msg.sessions
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			v.selected = calendar.Step(v.selected, v.granularity, -1)
		case "right", "l":
			v.selected = calendar.Step(v.selected, v.granularity, 1)
		case "z":
			v.cycleZoom()
		case "enter":
			v.zoomIn()
		case "t":
			v.selected, v.granularity = calendar.Today(time.Now())
		}
	}
	return v, nil
}

func (v *calendarView) cycleZoom() {
	for i, g := range calendar.Granularities {
		if g == v.granularity {
			v.granularity = calendar.Granularities[(i+1)%len(calendar.Granularities)]
			return
		}
	}
	v.granularity = calendar.Day
}

// zoomIn narrows the view one level toward the day anchored at the
// current selection.
func (v *calendarView) zoomIn() {
	switch v.granularity {
	case calendar.Year:
		v.granularity = calendar.Month
	case calendar.Month:
		v.granularity = calendar.Week
	case calendar.Week:
		v.granularity = calendar.Day
	}
}

func (v *calendarView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var body string
	switch v.granularity {
	case calendar.Day:
		title := formatter.StyleHeader.Render(v.selected.Format("Monday, Jan 2 2006"))
		body = title + "\n" + formatter.RenderDaySlots(calendar.DaySlots(v.sessions, v.selected))
	case calendar.Week:
		start := calendar.StartOfWeek(v.selected)
		title := formatter.StyleHeader.Render("Week of " + start.Format("Jan 2, 2006"))
		body = title + "\n" + formatter.RenderWeek(calendar.WeekDays(v.sessions, v.selected))
	case calendar.Month:
		body = formatter.RenderMonth(calendar.MonthCells(v.selected, time.Now()), v.selected)
	case calendar.Year:
		body = formatter.RenderYear(calendar.YearGrids(v.selected, time.Now()), v.selected)
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
