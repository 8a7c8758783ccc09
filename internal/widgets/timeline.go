package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Milestone is one timeline row set, already styled by the caller.
type Milestone struct {
	Heading string // e.g. "v0.3 · Oct 2024 — Run and search"
	Blurb   string
}

// MilestoneStyles carries the rail glyph styles.
type MilestoneStyles struct {
	Dot  lipgloss.Style
	Line lipgloss.Style
}

// RenderMilestone draws one timeline entry hanging off the rail:
//
//	● v0.3 · Oct 2024 — Run and search
//	│   One-keystroke script runner and the fuzzy file-search dialog.
//	│
//
// Every milestone has the same three-line shape so its extent never
// changes between reveal states.
func RenderMilestone(m Milestone, width int, st MilestoneStyles) string {
	dot := st.Dot.Render("●")
	bar := st.Line.Render("│")

	blurb := m.Blurb
	if width > 6 {
		blurb = lipgloss.NewStyle().Width(width - 4).Render(blurb)
	}
	blurbLines := strings.Split(blurb, "\n")
	for i, line := range blurbLines {
		blurbLines[i] = bar + "   " + line
	}

	rows := make([]string, 0, len(blurbLines)+2)
	rows = append(rows, dot+" "+m.Heading)
	rows = append(rows, blurbLines...)
	rows = append(rows, bar)
	return strings.Join(rows, "\n")
}
