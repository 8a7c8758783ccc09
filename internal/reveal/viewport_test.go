package reveal

import "testing"

func TestIntersectionRatio(t *testing.T) {
	tests := []struct {
		name   string
		ext    Extent
		winTop int
		winBot int
		want   float64
	}{
		{"fully visible", Extent{Top: 10, Height: 4}, 0, 40, 1},
		{"fully above window", Extent{Top: 0, Height: 5}, 10, 40, 0},
		{"fully below window", Extent{Top: 50, Height: 5}, 10, 40, 0},
		{"bottom half visible", Extent{Top: 8, Height: 4}, 10, 40, 0.5},
		{"top quarter visible", Extent{Top: 37, Height: 4}, 10, 38, 0.25},
		{"touching top edge only", Extent{Top: 9, Height: 10}, 10, 40, 0.9},
		{"zero height", Extent{Top: 10, Height: 0}, 0, 40, 0},
		{"window taller than element", Extent{Top: 20, Height: 2}, 10, 40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersectionRatio(tt.ext, tt.winTop, tt.winBot)
			if got != tt.want {
				t.Errorf("intersectionRatio(%+v, %d, %d) = %v, want %v",
					tt.ext, tt.winTop, tt.winBot, got, tt.want)
			}
		})
	}
}

func TestQualifiesThresholdBoundary(t *testing.T) {
	// Exactly at the threshold qualifies; strictly below does not.
	if !qualifies(0.1, 0.1) {
		t.Error("ratio exactly at threshold must qualify")
	}
	if qualifies(0.0999, 0.1) {
		t.Error("ratio below threshold must not qualify")
	}
	if !qualifies(0.15, 0.1) {
		t.Error("ratio above threshold must qualify")
	}
	// Zero threshold means any visible line qualifies, but never an
	// element with no visible lines.
	if !qualifies(0.01, 0) {
		t.Error("zero threshold must qualify any nonzero ratio")
	}
	if qualifies(0, 0) {
		t.Error("zero ratio must never qualify")
	}
}

func TestDispatchMarksVisibleElements(t *testing.T) {
	o := newTestObserver()
	s := NewViewportSource(o)
	s.Place("hero", Extent{Top: 0, Height: 10})
	s.Place("features", Extent{Top: 10, Height: 20})
	s.Place("install", Extent{Top: 30, Height: 10})

	// Window covers hero entirely and the first line of features (5%).
	s.Dispatch(0, 11)

	if !o.Revealed("hero") {
		t.Error("expected hero revealed")
	}
	if o.Revealed("features") {
		t.Error("features at 5% visibility must not be revealed")
	}
	if o.Revealed("install") {
		t.Error("install is offscreen and must not be revealed")
	}

	// Scroll down two lines: features now shows 3 of 20 lines (15%).
	s.Dispatch(2, 11)
	if !o.Revealed("features") {
		t.Error("features at 15% visibility must be revealed")
	}
}

func TestDispatchRootMargin(t *testing.T) {
	o := NewObserver(Config{Threshold: 0.1, RootMargin: Margin{Bottom: 5}})
	s := NewViewportSource(o)
	s.Place("sec", Extent{Top: 20, Height: 10})

	// Window [0, 16) alone misses the element; the 5-line bottom margin
	// extends it to line 21, exposing 1 of 10 lines (10%).
	s.Dispatch(0, 16)

	if !o.Revealed("sec") {
		t.Fatal("bottom root margin not applied")
	}
}

func TestDispatchZeroHeightWindow(t *testing.T) {
	o := newTestObserver()
	s := NewViewportSource(o)
	s.Place("sec", Extent{Top: 0, Height: 5})

	s.Dispatch(0, 0)

	if o.Revealed("sec") {
		t.Fatal("zero-height window must not reveal anything")
	}
}

func TestPlaceUpdatesExtentWithoutDoubleRegistration(t *testing.T) {
	o := newTestObserver()
	s := NewViewportSource(o)
	s.Place("sec", Extent{Top: 100, Height: 5})
	s.Place("sec", Extent{Top: 0, Height: 5})

	if o.WatchedCount() != 1 {
		t.Fatalf("WatchedCount = %d, want 1", o.WatchedCount())
	}
	s.Dispatch(0, 5)
	if !o.Revealed("sec") {
		t.Fatal("updated extent not used for dispatch")
	}
}

// The walkthrough from the page's acceptance scenario: five sections and
// four timeline entries, none initially visible; scrolling brings one
// section to 15% visibility; scrolling back out changes nothing.
func TestScrollScenario(t *testing.T) {
	sections := NewObserver(DefaultConfig())
	timeline := NewObserver(DefaultConfig())
	secSrc := NewViewportSource(sections)
	tlSrc := NewViewportSource(timeline)

	secIDs := []ElementID{"s1", "s2", "s3", "s4", "s5"}
	for i, id := range secIDs {
		secSrc.Place(id, Extent{Top: 100 + i*20, Height: 20})
	}
	for i, id := range []ElementID{"t1", "t2", "t3", "t4"} {
		tlSrc.Place(id, Extent{Top: 200 + i*6, Height: 6})
	}

	dispatch := func(top, height int) {
		secSrc.Dispatch(top, height)
		tlSrc.Dispatch(top, height)
	}

	// Page loads with everything below the fold.
	dispatch(0, 40)
	if sections.RevealedCount() != 0 || timeline.RevealedCount() != 0 {
		t.Fatal("nothing should be revealed before scrolling")
	}

	// Scroll until section 3 (lines 140..159) shows 3 of its 20 lines.
	dispatch(103, 40)
	if !sections.Revealed("s3") {
		t.Error("section 3 at 15% visibility must be revealed")
	}
	for _, id := range []ElementID{"s4", "s5"} {
		if sections.Revealed(id) {
			t.Errorf("section %s must remain unrevealed", id)
		}
	}
	if timeline.RevealedCount() != 0 {
		t.Error("no timeline entry is visible yet")
	}

	// Scroll back to the top; section 3 leaves the viewport entirely.
	dispatch(0, 40)
	if !sections.Revealed("s3") {
		t.Error("section 3 must stay revealed after leaving the viewport")
	}
}
