package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFitHeight(t *testing.T) {
	if got := FitHeight("a\nb\nc", 2); got != "a\nb" {
		t.Errorf("truncate: got %q", got)
	}
	if got := FitHeight("a", 3); got != "a\n\n" {
		t.Errorf("pad: got %q", got)
	}
	if got := FitHeight("a", 0); got != "" {
		t.Errorf("zero height: got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	got := PadRight("ab\ncdef", 4)
	for i, line := range strings.Split(got, "\n") {
		if w := lipgloss.Width(line); w != 4 {
			t.Errorf("line %d width = %d, want 4", i, w)
		}
	}
}

func TestFrameRenderStableHeight(t *testing.T) {
	f := Frame{Title: "Get JaxPY", Content: "line one\nline two"}
	out := f.Render(40)
	if out == "" {
		t.Fatal("empty frame render")
	}
	// title + 2 content lines + top/bottom border
	if h := lipgloss.Height(out); h != 5 {
		t.Errorf("frame height = %d, want 5", h)
	}
	if (Frame{}).Render(0) != "" {
		t.Error("zero width must render nothing")
	}
}

func TestRenderMilestoneShape(t *testing.T) {
	m := Milestone{
		Heading: "v0.1 · Mar 2024 — Editor core",
		Blurb:   "A split window.",
	}
	out := RenderMilestone(m, 60, MilestoneStyles{})
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("milestone has %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "●") {
		t.Errorf("first line missing rail dot: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "│") || !strings.HasPrefix(lines[2], "│") {
		t.Error("rail connector missing")
	}
	if !strings.Contains(out, "A split window.") {
		t.Error("blurb not rendered")
	}
}
