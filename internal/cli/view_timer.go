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
)

// tickInterval drives the cosmetic clock refresh. Elapsed time is
// always recomputed from the persisted start, never accumulated.
const tickInterval = 100 * time.Millisecond

// ── messages ─────────────────────────────────────────────────────────────────

type timerLoadedMsg struct {
	timer      *domain.Timer
	categories []*domain.Category
	err        error
}

type timerStoppedMsg struct {
	session *domain.Session
	err     error
}

type timerTickMsg time.Time

// ── view ─────────────────────────────────────────────────────────────────────

// timerView is the home screen: live stopwatch, category picker and
// description input.
type timerView struct {
	state *SharedState

	timer      *domain.Timer
	categories []*domain.Category
	cursor     int

	input   textinput.Model
	editing bool

	loading bool
	status  string
	err     error
}

func newTimerView(state *SharedState) *timerView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = domain.DefaultDescription
	ti.CharLimit = 120

	return &timerView{
		state:   state,
		input:   ti,
		loading: true,
	}
}

func (v *timerView) ID() ViewID    { return ViewTimer }
func (v *timerView) Title() string { return "Timer" }

func (v *timerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "category")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "describe")),
	}
}

func (v *timerView) CapturingInput() bool { return v.editing }

func (v *timerView) Init() tea.Cmd {
	return tea.Batch(v.loadData(), v.tick())
}

func (v *timerView) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (v *timerView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		t, err := app.Timer.Current(ctx)
		if err != nil {
			return timerLoadedMsg{err: err}
		}
		cats, err := app.Categories.List(ctx)
		if err != nil {
			return timerLoadedMsg{err: err}
		}
		return timerLoadedMsg{timer: t, categories: cats}
	}
}

// selectedCategory returns the category under the cursor, or "".
func (v *timerView) selectedCategory() string {
	if v.cursor < 0 || v.cursor >= len(v.categories) {
		return ""
	}
	return v.categories[v.cursor].Name
}

func (v *timerView) toggle() tea.Cmd {
	app := v.state.App
	if v.timer != nil && v.timer.Running {
		return func() tea.Msg {
			s, err := app.Timer.Stop(context.Background(), time.Now())
			return timerStoppedMsg{session: s, err: err}
		}
	}

	category := v.selectedCategory()
	description := v.input.Value()
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := app.Timer.Start(ctx, category); err != nil {
			return timerLoadedMsg{err: err}
		}
		if description != "" {
			if err := app.Timer.SetDescription(ctx, description); err != nil {
				return timerLoadedMsg{err: err}
			}
		}
		t, err := app.Timer.Current(ctx)
		if err != nil {
			return timerLoadedMsg{err: err}
		}
		cats, err := app.Categories.List(ctx)
		return timerLoadedMsg{timer: t, categories: cats, err: err}
	}
}

func (v *timerView) restart() tea.Cmd {
	if v.timer == nil || !v.timer.Running {
		return nil
	}
	app := v.state.App
	category := v.selectedCategory()
	return func() tea.Msg {
		s, err := app.Timer.Restart(context.Background(), category, time.Now())
		if err != nil {
			return timerStoppedMsg{err: err}
		}
		return timerStoppedMsg{session: s}
	}
}

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.timer = msg.timer
		v.categories = msg.categories
		v.alignCursor()
		if v.timer.Running && !v.editing {
			v.input.SetValue(v.timer.Description)
		}
		return v, nil

	case timerStoppedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		if msg.session != nil {
			v.status = fmt.Sprintf("Logged %s · %s (%s)",
				msg.session.Description, msg.session.Category,
				domain.FormatDurationExact(msg.session.Duration))
		}
		v.input.SetValue("")
		return v, v.loadData()

	case timerTickMsg:
		return v, v.tick()

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		if v.editing {
			return v.updateEditing(msg)
		}
		switch msg.String() {
		case "s", " ":
			v.status = ""
			return v, v.toggle()
		case "r":
			v.status = ""
			return v, v.restart()
		case "d":
			v.editing = true
			return v, v.input.Focus()
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				return v, v.switchIfUncategorized()
			}
		case "down", "j":
			if v.cursor < len(v.categories)-1 {
				v.cursor++
				return v, v.switchIfUncategorized()
			}
		}
	}

	if v.editing {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *timerView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.editing = false
		v.input.Blur()
		if v.timer != nil && v.timer.Running {
			description := v.input.Value()
			app := v.state.App
			return v, func() tea.Msg {
				if err := app.Timer.SetDescription(context.Background(), description); err != nil {
					return timerLoadedMsg{err: err}
				}
				return refreshViewMsg{}
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

// switchIfUncategorized reassigns a running uncategorized timer to the
// category now under the cursor. Any other running timer keeps its
// category; the cursor only affects the next start.
func (v *timerView) switchIfUncategorized() tea.Cmd {
	if v.timer == nil || !v.timer.Running || v.timer.Category != domain.Uncategorized {
		return nil
	}
	app := v.state.App
	category := v.selectedCategory()
	if category == "" {
		return nil
	}
	return func() tea.Msg {
		if _, err := app.Timer.SwitchCategory(context.Background(), category); err != nil {
			return timerLoadedMsg{err: err}
		}
		return refreshViewMsg{}
	}
}

// alignCursor points the cursor at the running timer's category when
// it exists in the registry.
func (v *timerView) alignCursor() {
	if v.timer == nil || !v.timer.Running {
		if v.cursor >= len(v.categories) {
			v.cursor = max(0, len(v.categories)-1)
		}
		return
	}
	for i, c := range v.categories {
		if c.Name == v.timer.Category {
			v.cursor = i
			return
		}
	}
}

func (v *timerView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder

	elapsed := time.Duration(0)
	if v.timer != nil {
		elapsed = v.timer.Elapsed(time.Now())
	}
	b.WriteString("  " + formatter.RenderClock(elapsed) + "\n")

	if v.timer != nil && v.timer.Running {
		b.WriteString("  " + formatter.StyleGreen.Render("● tracking ") +
			formatter.Bold(v.timer.Category) + "\n")
	} else {
		b.WriteString("  " + formatter.Dim("○ idle") + "\n")
	}
	b.WriteString("\n")

	// Description
	if v.editing {
		b.WriteString("  " + v.input.View() + "\n\n")
	} else {
		desc := v.input.Value()
		if v.timer != nil && v.timer.Running && v.timer.Description != "" {
			desc = v.timer.Description
		}
		if desc == "" {
			desc = domain.DefaultDescription
		}
		b.WriteString("  " + formatter.StyleFg.Render(desc) + "\n\n")
	}

	// Category picker
	for i, c := range v.categories {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString("  " + cursor + style.Render(formatter.CategoryLabel(c)) + "\n")
	}
	if len(v.categories) == 0 {
		b.WriteString("  " + formatter.Dim("No categories; sessions log as Uncategorized.") + "\n")
	}

	if v.status != "" {
		b.WriteString("\n  " + formatter.Dim(v.status) + "\n")
	}

	return b.String()
}
