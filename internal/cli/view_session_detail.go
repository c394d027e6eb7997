package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
)

// sessionDetailView shows one log entry in full. It is pushed onto
// the stack from the log list; esc pops back.
type sessionDetailView struct {
	state   *SharedState
	session *domain.Session
}

func newSessionDetailView(state *SharedState, s *domain.Session) *sessionDetailView {
	return &sessionDetailView{state: state, session: s}
}

func (v *sessionDetailView) ID() ViewID    { return ViewSessionDetail }
func (v *sessionDetailView) Title() string { return "Session" }

func (v *sessionDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *sessionDetailView) Init() tea.Cmd { return nil }

func (v *sessionDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return v, nil
}

func (v *sessionDetailView) View() string {
	s := v.session
	row := func(label, value string) string {
		return "  " + formatter.Dim(formatter.PadRight(label, 10)) + value + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + formatter.Bold(s.Description) + "\n\n")
	b.WriteString(row("ID", s.ID))
	b.WriteString(row("Category", s.Category))
	b.WriteString(row("Duration", domain.FormatDurationExact(s.Duration)))
	b.WriteString(row("Logged", formatter.HumanTimestamp(s.Timestamp)))
	for _, sp := range s.Spans {
		b.WriteString(row("Tracked",
			sp.Start.Format("15:04:05")+" to "+sp.End.Format("15:04:05")))
	}
	return b.String()
}
