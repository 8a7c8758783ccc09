package page

import "testing"

func TestNewPageShape(t *testing.T) {
	p := New()

	wantSlugs := []string{"hero", "features", "bolt", "timeline", "install"}
	if len(p.Sections) != len(wantSlugs) {
		t.Fatalf("got %d sections, want %d", len(p.Sections), len(wantSlugs))
	}
	for i, slug := range wantSlugs {
		if p.Sections[i].Slug != slug {
			t.Errorf("section %d slug = %q, want %q", i, p.Sections[i].Slug, slug)
		}
	}
	if len(p.Timeline) != 4 {
		t.Fatalf("got %d timeline entries, want 4", len(p.Timeline))
	}
	if p.Footer == "" {
		t.Error("footer is empty")
	}
}

func TestElementIDsAreUniqueAndDisjoint(t *testing.T) {
	p := New()

	seen := make(map[string]string)
	for _, id := range p.SectionIDs() {
		if prev, dup := seen[string(id)]; dup {
			t.Errorf("duplicate element ID shared with %s", prev)
		}
		seen[string(id)] = "section"
	}
	for _, id := range p.TimelineIDs() {
		if prev, dup := seen[string(id)]; dup {
			t.Errorf("timeline ID collides with %s", prev)
		}
		seen[string(id)] = "timeline"
	}
	if len(seen) != len(p.Sections)+len(p.Timeline) {
		t.Errorf("got %d distinct IDs, want %d", len(seen), len(p.Sections)+len(p.Timeline))
	}
}

func TestNewPageMintsFreshIDs(t *testing.T) {
	a, b := New(), New()
	if a.Sections[0].ID == b.Sections[0].ID {
		t.Error("two page instances share an element ID")
	}
}

func TestSectionBySlug(t *testing.T) {
	p := New()
	s, ok := p.SectionBySlug("bolt")
	if !ok {
		t.Fatal("bolt section missing")
	}
	if s.Title == "" || s.Body == "" {
		t.Error("bolt section has empty title or body")
	}
	if _, ok := p.SectionBySlug("pricing"); ok {
		t.Error("unknown slug must not resolve")
	}
}

func TestRenderCachesBothVariants(t *testing.T) {
	p := New()
	if err := p.Render(RenderOptions{Width: 60, Style: "dark"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, s := range p.Sections {
		if p.Rendered(s.ID) == "" {
			t.Errorf("section %s: styled render is empty", s.Slug)
		}
		if p.Plain(s.ID) == "" {
			t.Errorf("section %s: plain render is empty", s.Slug)
		}
	}
}

func TestRenderedUnknownIDIsEmpty(t *testing.T) {
	p := New()
	if got := p.Rendered("nope"); got != "" {
		t.Errorf("Rendered(unknown) = %q, want empty", got)
	}
}
