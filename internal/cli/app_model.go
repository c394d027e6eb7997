package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikk-app/tikk/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack below a persistent tab bar.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

// inputCapturer is implemented by views that take over the keyboard
// while a text field or form is active, suspending global shortcuts.
type inputCapturer interface {
	CapturingInput() bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}

	// Start with the timer as the home view.
	m.viewStack = []View{newTimerView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case switchViewMsg:
		m.viewStack = []View{msg.view}
		return m, msg.view.Init()

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case refreshViewMsg:
		// Broadcast so views below the top reload after mutations
		// made above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	v := m.activeView()

	// While a form or input has focus, only the view sees keys.
	if c, ok := v.(inputCapturer); !ok || !c.CapturingInput() {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if len(m.viewStack) > 1 {
				m.viewStack = m.viewStack[:len(m.viewStack)-1]
				return m, nil
			}
		case "1":
			return m.switchTab(ViewTimer)
		case "2":
			return m.switchTab(ViewLogs)
		case "3":
			return m.switchTab(ViewDashboard)
		case "4":
			return m.switchTab(ViewCalendar)
		case "5":
			return m.switchTab(ViewCategories)
		}
	}

	if v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) switchTab(id ViewID) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil && v.ID() == id {
		return m, nil
	}
	var next View
	switch id {
	case ViewTimer:
		next = newTimerView(m.state)
	case ViewLogs:
		next = newLogsView(m.state)
	case ViewDashboard:
		next = newDashboardView(m.state)
	case ViewCalendar:
		next = newCalendarView(m.state)
	case ViewCategories:
		next = newCategoriesView(m.state)
	}
	m.viewStack = []View{next}
	return m, next.Init()
}

var tabOrder = []struct {
	id    ViewID
	key   string
	label string
}{
	{ViewTimer, "1", "Timer"},
	{ViewLogs, "2", "Logs"},
	{ViewDashboard, "3", "Dashboard"},
	{ViewCalendar, "4", "Calendar"},
	{ViewCategories, "5", "Categories"},
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	var b strings.Builder

	// Tab bar
	var tabs []string
	for _, t := range tabOrder {
		label := t.key + " " + t.label
		if v.ID() == t.id {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}
	b.WriteString("  " + strings.Join(tabs, formatter.Dim("  ·  ")) + "\n\n")

	body := v.View()
	if m.state.Height > 0 {
		lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
		if limit := m.state.ContentHeight(); len(lines) > limit {
			// Tall views are clipped to the window rather than scrolled.
			keep := limit - 1
			if keep < 1 {
				keep = 1
			}
			lines = append(lines[:keep], formatter.Dim("  ⋯"))
			body = strings.Join(lines, "\n") + "\n"
		}
	}
	b.WriteString(body)

	// Help line
	var hints []string
	for _, binding := range v.ShortHelp() {
		hints = append(hints, formatter.Dim(binding.Help().Key+" "+binding.Help().Desc))
	}
	hints = append(hints, formatter.Dim("q quit"))
	b.WriteString("\n  " + strings.Join(hints, formatter.Dim("  ")) + "\n")

	return b.String()
}
