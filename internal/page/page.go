// Package page holds the promotional page itself: the fixed set of
// sections and release-timeline entries, and their rendered bodies. The
// set is built once at startup and never changes for the lifetime of
// the program.
package page

import (
	"github.com/google/uuid"

	"github.com/jaxpy/jaxpy-tour/internal/reveal"
)

// Section is one top-level region of the page.
type Section struct {
	ID    reveal.ElementID
	Slug  string
	Title string
	Body  string // markdown
}

// TimelineEntry is one milestone in the release history.
type TimelineEntry struct {
	ID      reveal.ElementID
	Version string
	Date    string
	Title   string
	Blurb   string
}

// Page is the composed promotional page. Sections and Timeline are
// ordered top to bottom as they appear on screen.
type Page struct {
	Sections []Section
	Timeline []TimelineEntry
	Footer   string

	rendered map[reveal.ElementID]string
	plain    map[reveal.ElementID]string
}

// New builds the page with fresh element identities. IDs are stable for
// the page instance; a new page gets new IDs.
func New() *Page {
	p := &Page{
		Sections: sections(),
		Timeline: timeline(),
		Footer:   footer,
		rendered: make(map[reveal.ElementID]string),
		plain:    make(map[reveal.ElementID]string),
	}
	for i := range p.Sections {
		p.Sections[i].ID = reveal.ElementID(uuid.NewString())
	}
	for i := range p.Timeline {
		p.Timeline[i].ID = reveal.ElementID(uuid.NewString())
	}
	return p
}

// SectionIDs returns the registration snapshot for section regions.
func (p *Page) SectionIDs() []reveal.ElementID {
	ids := make([]reveal.ElementID, len(p.Sections))
	for i, s := range p.Sections {
		ids[i] = s.ID
	}
	return ids
}

// TimelineIDs returns the registration snapshot for timeline entries.
func (p *Page) TimelineIDs() []reveal.ElementID {
	ids := make([]reveal.ElementID, len(p.Timeline))
	for i, e := range p.Timeline {
		ids[i] = e.ID
	}
	return ids
}

// SectionBySlug looks a section up by its stable slug.
func (p *Page) SectionBySlug(slug string) (Section, bool) {
	for _, s := range p.Sections {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}
