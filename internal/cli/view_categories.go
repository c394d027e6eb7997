package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
)

// ── messages ─────────────────────────────────────────────────────────────────

type categoriesLoadedMsg struct {
	categories []*domain.Category
	err        error
}

type categoryMutatedMsg struct {
	status string
	err    error
}

// editMode distinguishes the add and rename forms.
type editMode int

const (
	editNone editMode = iota
	editAdd
	editRename
)

// ── view ─────────────────────────────────────────────────────────────────────

// categoriesView manages the registry: add, rename, delete, with the
// icon picked from the fixed catalog.
type categoriesView struct {
	state *SharedState

	categories []*domain.Category
	cursor     int

	mode       editMode
	input      textinput.Model
	iconCursor int

	confirming bool

	loading bool
	status  string
	err     error
}

func newCategoriesView(state *SharedState) *categoriesView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "category name"
	ti.CharLimit = 40

	return &categoriesView{
		state:   state,
		input:   ti,
		loading: true,
	}
}

func (v *categoriesView) ID() ViewID    { return ViewCategories }
func (v *categoriesView) Title() string { return "Categories" }

func (v *categoriesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *categoriesView) CapturingInput() bool { return v.mode != editNone || v.confirming }

func (v *categoriesView) Init() tea.Cmd {
	return v.loadData()
}

func (v *categoriesView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		cats, err := app.Categories.List(context.Background())
		return categoriesLoadedMsg{categories: cats, err: err}
	}
}

func (v *categoriesView) selected() *domain.Category {
	if v.cursor < 0 || v.cursor >= len(v.categories) {
		return nil
	}
	return v.categories[v.cursor]
}

func (v *categoriesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.categories = msg.categories
		if v.cursor >= len(v.categories) {
			v.cursor = max(0, len(v.categories)-1)
		}
		return v, nil

	case categoryMutatedMsg:
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
		if v.mode != editNone {
			return v.updateEditing(msg)
		}
		return v.updateBrowsing(msg)
	}
	return v, nil
}

func (v *categoriesView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.categories)-1 {
			v.cursor++
		}
	case "a":
		if len(v.categories) >= domain.MaxCategories {
			v.status = fmt.Sprintf("Registry is full (%d).", domain.MaxCategories)
			return v, nil
		}
		v.status = ""
		v.mode = editAdd
		v.iconCursor = 0
		v.input.SetValue("")
		return v, v.input.Focus()
	case "e":
		if c := v.selected(); c != nil {
			v.status = ""
			v.mode = editRename
			v.input.SetValue(c.Name)
			v.iconCursor = iconIndex(c.Icon)
			return v, v.input.Focus()
		}
	case "x":
		if v.selected() != nil {
			v.status = ""
			v.confirming = true
		}
	}
	return v, nil
}

func (v *categoriesView) updateConfirming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirming = false
		if c := v.selected(); c != nil {
			app := v.state.App
			id := c.ID
			return v, func() tea.Msg {
				if err := app.Categories.Delete(context.Background(), id); err != nil {
					return categoryMutatedMsg{err: err}
				}
				return categoryMutatedMsg{status: "Deleted. Logged sessions keep the name."}
			}
		}
	default:
		v.confirming = false
	}
	return v, nil
}

func (v *categoriesView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab:
		v.iconCursor = (v.iconCursor + 1) % len(domain.AvailableIcons)
		return v, nil
	case tea.KeyShiftTab:
		v.iconCursor = (v.iconCursor + len(domain.AvailableIcons) - 1) % len(domain.AvailableIcons)
		return v, nil
	case tea.KeyEnter:
		mode := v.mode
		v.mode = editNone
		v.input.Blur()

		name := v.input.Value()
		icon := domain.AvailableIcons[v.iconCursor]
		app := v.state.App

		if mode == editAdd {
			return v, func() tea.Msg {
				if _, err := app.Categories.Add(context.Background(), name, icon); err != nil {
					return categoryMutatedMsg{err: err}
				}
				return categoryMutatedMsg{status: "Added."}
			}
		}
		if c := v.selected(); c != nil {
			id := c.ID
			return v, func() tea.Msg {
				if _, err := app.Categories.Rename(context.Background(), id, name, icon); err != nil {
					return categoryMutatedMsg{err: err}
				}
				return categoryMutatedMsg{status: "Renamed."}
			}
		}
		return v, nil
	case tea.KeyEsc:
		v.mode = editNone
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func iconIndex(icon domain.IconName) int {
	for i, name := range domain.AvailableIcons {
		if name == icon {
			return i
		}
	}
	return 0
}

func (v *categoriesView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
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
		b.WriteString("  " + formatter.Dim("No categories yet. Press 'a' to add one.") + "\n")
	}
	b.WriteString("\n  " + formatter.Dim(
		fmt.Sprintf("%d/%d used", len(v.categories), domain.MaxCategories)) + "\n")

	if v.mode != editNone {
		icon := domain.AvailableIcons[v.iconCursor]
		b.WriteString("\n  " + v.input.View() + "\n")
		b.WriteString("  " + formatter.Dim("icon (tab to cycle): ") +
			icon.Glyph() + " " + formatter.StyleFg.Render(string(icon)) + "\n")
	}
	if v.confirming {
		if c := v.selected(); c != nil {
			b.WriteString("\n  " + formatter.StyleYellow.Render(
				fmt.Sprintf("Delete %q? y/n", c.Name)) + "\n")
		}
	}
	if v.status != "" {
		b.WriteString("\n  " + formatter.Dim(v.status) + "\n")
	}
	return b.String()
}
