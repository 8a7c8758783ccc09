package tui

import (
	"regexp"
	"testing"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestAllPaletteColorsAreValidHex(t *testing.T) {
	colors := AllPaletteColors()
	if len(colors) != 26 {
		t.Errorf("expected 26 palette colors, got %d", len(colors))
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid hex color: %q", string(c))
		}
	}
}

func TestFadeColorsStepTowardText(t *testing.T) {
	colors := FadeColors()
	if len(colors) != fadeFrames-1 {
		t.Fatalf("fade has %d colors, want %d", len(colors), fadeFrames-1)
	}
	for _, c := range colors {
		if !hexColorRegex.MatchString(string(c)) {
			t.Errorf("invalid fade color: %q", string(c))
		}
	}
	// First frame is the dimmest; they must all be distinct.
	seen := map[string]bool{}
	for _, c := range colors {
		if seen[string(c)] {
			t.Errorf("duplicate fade color %q", string(c))
		}
		seen[string(c)] = true
	}
}
