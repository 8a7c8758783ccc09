package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame draws content inside a rounded border with an inline title.
type Frame struct {
	Title      string
	Content    string
	Border     lipgloss.Style
	TitleStyle lipgloss.Style
}

func (f Frame) Render(width int) string {
	if width <= 0 {
		return ""
	}
	body := f.Content
	if f.Title != "" {
		body = f.TitleStyle.Render(f.Title) + "\n" + body
	}
	style := f.Border.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2)
	return style.Render(body)
}

// FitHeight pads or truncates s to exactly h lines.
func FitHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// PadRight pads every line of s with spaces to the given display width,
// preventing ghosting from previous frames.
func PadRight(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + strings.Repeat(" ", gap)
		}
	}
	return strings.Join(lines, "\n")
}

// Rule draws a horizontal divider.
func Rule(width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	return style.Render(strings.Repeat("─", width))
}
