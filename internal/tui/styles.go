package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jaxpy/jaxpy-tour/internal/widgets"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	keyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Unrevealed elements: a faint hint of the section title over blank
	// lines, the "before" state of the transition.
	hiddenTitleStyle = lipgloss.NewStyle().Foreground(colorSurface2)

	// Page footer line
	pageFooterStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	ruleStyle = lipgloss.NewStyle().Foreground(colorSurface1)

	// Timeline rail
	milestoneVersionStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	milestoneDateStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	milestoneTitleStyle   = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	milestoneBlurbStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)

	railStyles = widgets.MilestoneStyles{
		Dot:  lipgloss.NewStyle().Foreground(colorAccent),
		Line: lipgloss.NewStyle().Foreground(colorSurface1),
	}
	railHiddenStyles = widgets.MilestoneStyles{
		Dot:  lipgloss.NewStyle().Foreground(colorSurface1),
		Line: lipgloss.NewStyle().Foreground(colorSurface0),
	}

	// Jump picker modal
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	jumpQueryStyle    = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	jumpSelectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	jumpItemStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
)
