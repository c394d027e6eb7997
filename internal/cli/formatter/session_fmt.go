package formatter

import (
	"fmt"
	"strings"

	"github.com/tikk-app/tikk/internal/domain"
)

// SessionLine renders one log row: id, description, category, exact
// duration and a relative timestamp.
func SessionLine(s *domain.Session) string {
	return fmt.Sprintf("%s  %s %s %s %s",
		TruncID(s.ID),
		StyleFg.Render(PadRight(Truncate(s.Description, 28), 28)),
		StyleDim.Render(PadRight(Truncate(s.Category, 16), 16)),
		PadRight(domain.FormatDurationExact(s.Duration), 9),
		StyleDim.Render(HumanTimestamp(s.Timestamp)),
	)
}

// SessionTable renders a page of the log with a header row.
func SessionTable(sessions []*domain.Session) string {
	if len(sessions) == 0 {
		return Dim("No sessions logged yet.")
	}

	var b strings.Builder
	b.WriteString(StyleDim.Render(fmt.Sprintf("%-8s  %-28s %-16s %-9s %s",
		"ID", "DESCRIPTION", "CATEGORY", "TIME", "WHEN")) + "\n")
	for _, s := range sessions {
		b.WriteString(SessionLine(s) + "\n")
	}
	return b.String()
}

// PageIndicator renders "page N/M" for the log footer.
func PageIndicator(page, totalPages int) string {
	return StyleDim.Render(fmt.Sprintf("page %d/%d", page, totalPages))
}
