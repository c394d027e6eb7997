package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikk-app/tikk/internal/cli/formatter"
	"github.com/tikk-app/tikk/internal/domain"
	"github.com/tikk-app/tikk/internal/stats"
)

// ── messages ─────────────────────────────────────────────────────────────────

type dashboardLoadedMsg struct {
	summary    stats.Summary
	categories []string
	err        error
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView shows rolling-window totals, the per-category
// breakdown and the activity series.
type dashboardView struct {
	state *SharedState

	rng     stats.Range
	filter  string // empty means all categories
	summary *stats.Summary

	// Categories seen in the range, for the series filter cycle.
	categories []string

	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:   state,
		rng:     stats.Last24Hours,
		loading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "range")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter series")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	rng, filter := v.rng, v.filter
	return func() tea.Msg {
		sessions, err := app.Sessions.List(context.Background())
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		var opts []stats.Option
		if filter != "" {
			opts = append(opts, stats.WithCategoryFilter(filter))
		}
		summary := stats.Summarize(sessions, rng, time.Now(), opts...)

		// The unfiltered breakdown drives the filter cycle.
		full := stats.Summarize(sessions, rng, time.Now())
		names := make([]string, 0, len(full.ByCategory))
		for _, ct := range full.ByCategory {
			names = append(names, ct.Name)
		}
		return dashboardLoadedMsg{summary: summary, categories: names}
	}
}

// cycleRange rotates 24h → 1w → all.
func (v *dashboardView) cycleRange() {
	switch v.rng {
	case stats.Last24Hours:
		v.rng = stats.LastWeek
	case stats.LastWeek:
		v.rng = stats.AllTime
	default:
		v.rng = stats.Last24Hours
	}
}

// cycleFilter rotates through all categories seen in the range, then
// back to no filter.
func (v *dashboardView) cycleFilter() {
	if len(v.categories) == 0 {
		v.filter = ""
		return
	}
	if v.filter == "" {
		v.filter = v.categories[0]
		return
	}
	for i, name := range v.categories {
		if name == v.filter {
			if i+1 < len(v.categories) {
				v.filter = v.categories[i+1]
			} else {
				v.filter = ""
			}
			return
		}
	}
	v.filter = ""
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.summary = &msg.summary
		v.categories = msg.categories
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.cycleRange()
			v.loading = true
			return v, v.loadData()
		case "f":
			v.cycleFilter()
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.summary == nil {
		return ""
	}

	var b strings.Builder

	label := map[stats.Range]string{
		stats.Last24Hours: "Last 24 hours",
		stats.LastWeek:    "Last week",
		stats.AllTime:     "All time",
	}[v.rng]
	b.WriteString("  " + formatter.StyleHeader.Render(label))
	if v.filter != "" {
		b.WriteString(formatter.Dim("  ·  series: ") + formatter.StyleFg.Render(v.filter))
	}
	b.WriteString("\n\n")

	b.WriteString("  Total " + formatter.Bold(domain.FormatDuration(v.summary.Total)) + "\n\n")

	bars := formatter.RenderCategoryBars(v.summary.ByCategory, 24)
	for _, line := range strings.Split(strings.TrimRight(bars, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	if len(v.summary.Series) > 0 {
		b.WriteString("\n")
		chart := formatter.RenderSeries(v.summary.Series, 6)
		for _, line := range strings.Split(strings.TrimRight(chart, "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
