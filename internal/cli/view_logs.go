package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/service"
)

// ── messages ─────────────────────────────────────────────────────────────────

type logsLoadedMsg struct {
	page *service.SessionPage
	err  error
}

type logMutatedMsg struct {
	status string
	err    error
}

// ── view ─────────────────────────────────────────────────────────────────────

// logsView is the paginated session log with inline edit, delete and
// resume.
type logsView struct {
	state *SharedState

	page    *service.SessionPage
	pageNum int
	cursor  int

	confirming bool
	editing    bool
	input      textinput.Model

	loading bool
	status  string
	err     error
}

func newLogsView(state *SharedState) *logsView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 120

	return &logsView{
		state:   state,
		pageNum: 1,
		input:   ti,
		loading: true,
	}
}

func (v *logsView) ID() ViewID    { return ViewLogs }
func (v *logsView) Title() string { return "Logs" }

func (v *logsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "page")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	}
}

func (v *logsView) CapturingInput() bool { return v.editing || v.confirming }

func (v *logsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *logsView) loadData() tea.Cmd {
	app := v.state.App
	page := v.pageNum
	return func() tea.Msg {
		p, err := app.Sessions.Page(context.Background(), page)
		return logsLoadedMsg{page: p, err: err}
	}
}

func (v *logsView) selected() *domain.Session {
	if v.page == nil || v.cursor < 0 || v.cursor >= len(v.page.Sessions) {
		return nil
	}
	return v.page.Sessions[v.cursor]
}

func (v *logsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.page = msg.page
		// The service clamps out-of-range pages after deletions.
		v.pageNum = msg.page.Page
		if v.cursor >= len(msg.page.Sessions) {
			v.cursor = max(0, len(msg.page.Sessions)-1)
		}
		return v, nil

	case logMutatedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.status = msg.status
		return v, tea.Batch(v.loadData(), refreshViews())

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if v.confirming {
			return v.updateConfirming(msg)
		}
		if v.editing {
			return v.updateEditing(msg)
		}
		return v.updateBrowsing(msg)
	}

	return v, nil
}

func (v *logsView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.page != nil && v.cursor < len(v.page.Sessions)-1 {
			v.cursor++
		}
	case "left", "h":
		if v.pageNum > 1 {
			v.pageNum--
			v.cursor = 0
			v.loading = true
			return v, v.loadData()
		}
	case "right", "l":
		if v.page != nil && v.pageNum < v.page.TotalPages {
			v.pageNum++
			v.cursor = 0
			v.loading = true
			return v, v.loadData()
		}
	case "x":
		if v.selected() != nil {
			v.status = ""
			v.confirming = true
		}
	case "e":
		if s := v.selected(); s != nil {
			v.status = ""
			v.editing = true
			v.input.SetValue(s.Description)
			return v, v.input.Focus()
		}
	case "enter":
		if s := v.selected(); s != nil {
			v.status = ""
			return v, pushView(newSessionDetailView(v.state, s))
		}
	case "r":
		if s := v.selected(); s != nil {
			v.status = ""
			app := v.state.App
			id := s.ID
			return v, func() tea.Msg {
				committed, err := app.Timer.Resume(context.Background(), id, time.Now())
				if err != nil {
					return logMutatedMsg{err: err}
				}
				status := "Resumed."
				if committed != nil {
					status = fmt.Sprintf("Logged %s first; resumed.", committed.Description)
				}
				return logMutatedMsg{status: status}
			}
		}
	}
	return v, nil
}

func (v *logsView) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirming = false
		if s := v.selected(); s != nil {
			app := v.state.App
			id := s.ID
			return v, func() tea.Msg {
				if err := app.Sessions.Delete(context.Background(), id); err != nil {
					return logMutatedMsg{err: err}
				}
				return logMutatedMsg{status: "Deleted."}
			}
		}
	default:
		v.confirming = false
	}
	return v, nil
}

func (v *logsView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.editing = false
		v.input.Blur()
		if s := v.selected(); s != nil {
			app := v.state.App
			id, category := s.ID, s.Category
			description := v.input.Value()
			return v, func() tea.Msg {
				if _, err := app.Sessions.Update(context.Background(), id, description, category); err != nil {
					return logMutatedMsg{err: err}
				}
				return logMutatedMsg{status: "Updated."}
			}
		}
		return v, nil
	case tea.KeyEsc:
		v.editing = false
		v.input.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *logsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.page == nil || v.page.Total == 0 {
		return "\n  " + formatter.Dim("No sessions logged yet.")
	}

	var b strings.Builder
	for i, s := range v.page.Sessions {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		line := formatter.SessionLine(s)
		if i == v.cursor && v.editing {
			line = formatter.TruncID(s.ID) + "  " + v.input.View()
		}
		b.WriteString("  " + cursor + line + "\n")
	}

	b.WriteString("\n  " + formatter.PageIndicator(v.page.Page, v.page.TotalPages))
	b.WriteString(formatter.Dim(fmt.Sprintf("  ·  %d total", v.page.Total)) + "\n")

	if v.confirming {
		if s := v.selected(); s != nil {
			b.WriteString("\n  " + formatter.StyleYellow.Render(
				fmt.Sprintf("Delete %q? y/n", s.Description)) + "\n")
		}
	}
	if v.status != "" {
		b.WriteString("\n  " + formatter.Dim(v.status) + "\n")
	}
	return b.String()
}
