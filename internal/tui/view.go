package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaxpy/jaxpy-tour/internal/widgets"
)

func (a App) View() string {
	if !a.ready {
		return "Loading…"
	}
	return a.renderHeader() + "\n" +
		a.renderBody() + "\n" +
		a.renderStatus() + "\n" +
		a.renderFooter()
}

// ---------------------------------------------------------------------------
// Bars
// ---------------------------------------------------------------------------

func (a App) renderHeader() string {
	title := headerAppStyle.Render("JaxPY") + "  ·  a fast, friendly Python IDE"
	return headerBarStyle.Width(a.width).Render(title)
}

func (a App) renderStatus() string {
	revealed := a.sections.RevealedCount() + a.timeline.RevealedCount()
	watched := a.sections.WatchedCount() + a.timeline.WatchedCount()
	pct := 0
	if m := a.maxOffset(); m > 0 {
		pct = a.offset * 100 / m
	}
	line := fmt.Sprintf("revealed %d/%d · %d%% scrolled", revealed, watched, pct)
	return statusBarStyle.Width(a.width).Render(line)
}

func (a App) renderFooter() string {
	bindings := a.keys.ShortHelp()
	if a.showHelp {
		bindings = nil
		for _, row := range a.keys.FullHelp() {
			bindings = append(bindings, row...)
		}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts,
			keyStyle.Render(b.Help().Key)+" "+helpDescStyle.Render(b.Help().Desc))
	}
	return footerStyle.Width(a.width).Render(strings.Join(parts, "  "))
}

// ---------------------------------------------------------------------------
// Body
// ---------------------------------------------------------------------------

func (a App) renderBody() string {
	if a.jump.active {
		return lipgloss.Place(a.width, a.viewHeight(),
			lipgloss.Center, lipgloss.Center, a.renderJump())
	}

	rendered := make([]string, len(a.blocks))
	for i, b := range a.blocks {
		rendered[i] = a.renderBlock(b)
	}
	pageLines := strings.Split(joinLines(rendered), "\n")

	lo := a.offset
	hi := lo + a.viewHeight()
	if lo > len(pageLines) {
		lo = len(pageLines)
	}
	if hi > len(pageLines) {
		hi = len(pageLines)
	}
	window := strings.Join(pageLines[lo:hi], "\n")
	window = widgets.FitHeight(window, a.viewHeight())
	return widgets.PadRight(window, a.width)
}

// renderBlock picks the block's presentation for its current reveal
// state: hidden placeholder, a transition frame, or the final render.
// Every variant is fitted to the block's extent so the page never
// reflows.
func (a App) renderBlock(b block) string {
	obs := a.observerFor(b)
	if obs == nil {
		return b.final
	}
	if !obs.Revealed(b.id) {
		return widgets.FitHeight(a.hiddenBlock(b), b.extent.Height)
	}
	f := a.fade[b.id]
	if f <= 0 || f >= fadeFrames {
		return b.final
	}
	gray := FadeColors()[f-1]
	frame := lipgloss.NewStyle().Foreground(gray).Render(b.plain)
	return widgets.FitHeight(frame, b.extent.Height)
}

func (a App) hiddenBlock(b block) string {
	if b.kind == blockMilestone {
		return widgets.RenderMilestone(widgets.Milestone{
			Heading: hiddenTitleStyle.Render(b.title),
		}, a.cfg.UI.Width, railHiddenStyles)
	}
	return hiddenTitleStyle.Render("· " + b.title)
}

func (a App) renderJump() string {
	ranked := rankItems(a.jumpItems, a.jump.query)
	cursor := a.jump.cursor
	if cursor >= len(ranked) {
		cursor = len(ranked) - 1
	}

	var sb strings.Builder
	sb.WriteString(jumpQueryStyle.Render("Jump to section") + "\n")
	sb.WriteString("/" + a.jump.query + "▌\n\n")
	for i, it := range ranked {
		line := it.title
		if i == cursor {
			sb.WriteString(jumpSelectedStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString(jumpItemStyle.Render("  "+line) + "\n")
		}
	}
	content := lipgloss.NewStyle().Width(min(44, a.width-6)).Render(
		strings.TrimRight(sb.String(), "\n"))
	return modalStyle.Render(content)
}

// joinLines joins pre-rendered blocks with single newlines, keeping the
// line arithmetic identical to the layout pass.
func joinLines(blocks []string) string {
	return strings.Join(blocks, "\n")
}
