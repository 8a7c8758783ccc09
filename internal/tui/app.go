// Package tui renders the tour in the terminal. The composed page
// scrolls inside the window; every scroll or resize re-dispatches
// intersection records, and elements fade in the first time they cross
// the visibility threshold.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jaxpy/jaxpy-tour/internal/config"
	"github.com/jaxpy/jaxpy-tour/internal/page"
	"github.com/jaxpy/jaxpy-tour/internal/reveal"
	"github.com/jaxpy/jaxpy-tour/internal/widgets"
)

// fadeFrames is the number of transition frames from first mark to the
// fully styled render.
const fadeFrames = 4

type blockKind int

const (
	blockChrome blockKind = iota // not watched: gaps, page footer
	blockSection
	blockMilestone
)

// block is one laid-out region of the composed page. final and plain
// are rendered once at startup; extents never change afterwards, which
// keeps the registration snapshot honest.
type block struct {
	kind   blockKind
	id     reveal.ElementID
	slug   string
	title  string
	final  string // fully revealed render
	plain  string // unstyled variant for transition frames
	extent reveal.Extent
}

// App is the bubbletea model for the tour.
type App struct {
	cfg  config.Config
	log  *slog.Logger
	page *page.Page

	// Two observer instances, one per selection criterion, sharing one
	// configuration and one registration path.
	sections *reveal.Observer
	timeline *reveal.Observer
	sources  []*reveal.ViewportSource

	blocks []block
	total  int // total page lines

	width  int
	height int
	offset int
	ready  bool

	fade     map[reveal.ElementID]int // frames shown, 1..fadeFrames
	fading   bool
	showHelp bool

	jump      jumpState
	jumpItems []jumpItem

	keys keyMap
}

// New builds the model. The page must already be rendered; layout and
// the registration snapshot happen here, exactly once.
func New(cfg config.Config, log *slog.Logger, p *page.Page) App {
	blocks, total := buildBlocks(p, cfg.UI.Width)

	logMark := func(group string) reveal.Option {
		return reveal.WithOnMark(func(id reveal.ElementID) {
			log.Debug("element revealed", "group", group, "element", string(id))
		})
	}
	sections := reveal.NewObserver(reveal.DefaultConfig(), logMark("section"))
	timeline := reveal.NewObserver(reveal.DefaultConfig(), logMark("timeline"))
	secSrc := reveal.NewViewportSource(sections)
	tlSrc := reveal.NewViewportSource(timeline)

	var items []jumpItem
	for _, b := range blocks {
		switch b.kind {
		case blockSection:
			secSrc.Place(b.id, b.extent)
			items = append(items, jumpItem{slug: b.slug, title: b.title, top: b.extent.Top})
		case blockMilestone:
			tlSrc.Place(b.id, b.extent)
		}
	}

	return App{
		cfg:       cfg,
		log:       log,
		page:      p,
		sections:  sections,
		timeline:  timeline,
		sources:   []*reveal.ViewportSource{secSrc, tlSrc},
		blocks:    blocks,
		total:     total,
		fade:      make(map[reveal.ElementID]int),
		jumpItems: items,
		keys:      newKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

// observerFor returns the observer watching the block, or nil for
// chrome.
func (a App) observerFor(b block) *reveal.Observer {
	switch b.kind {
	case blockSection:
		return a.sections
	case blockMilestone:
		return a.timeline
	}
	return nil
}

// viewHeight is the scrolling window: total height minus header, status
// and footer bars.
func (a App) viewHeight() int {
	h := a.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (a App) maxOffset() int {
	m := a.total - a.viewHeight()
	if m < 0 {
		m = 0
	}
	return m
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

// buildBlocks composes the page top to bottom at a fixed width and
// returns the blocks with their extents plus the total line count.
func buildBlocks(p *page.Page, width int) ([]block, int) {
	var blocks []block
	top := 0

	push := func(b block) {
		h := lipgloss.Height(b.final)
		b.extent = reveal.Extent{Top: top, Height: h}
		top += h
		blocks = append(blocks, b)
	}
	gap := func() {
		push(block{kind: blockChrome, final: ""})
	}

	for _, s := range p.Sections {
		body := p.Rendered(s.ID)
		if s.Slug == "install" {
			body = widgets.Frame{Content: body}.Render(width)
		}
		push(block{
			kind:  blockSection,
			id:    s.ID,
			slug:  s.Slug,
			title: s.Title,
			final: body,
			plain: p.Plain(s.ID),
		})
		gap()
		if s.Slug == "timeline" {
			for _, e := range p.Timeline {
				push(milestoneBlock(e, width))
			}
			gap()
		}
	}

	push(block{
		kind:  blockChrome,
		final: widgets.Rule(width, ruleStyle) + "\n" + pageFooterStyle.Render(p.Footer),
	})
	return blocks, top
}

func milestoneBlock(e page.TimelineEntry, width int) block {
	heading := milestoneVersionStyle.Render(e.Version) +
		milestoneDateStyle.Render(" · "+e.Date+" — ") +
		milestoneTitleStyle.Render(e.Title)
	final := widgets.RenderMilestone(widgets.Milestone{
		Heading: heading,
		Blurb:   milestoneBlurbStyle.Render(e.Blurb),
	}, width, railStyles)

	plain := widgets.RenderMilestone(widgets.Milestone{
		Heading: e.Version + " · " + e.Date + " — " + e.Title,
		Blurb:   e.Blurb,
	}, width, widgets.MilestoneStyles{})

	return block{
		kind:  blockMilestone,
		id:    e.ID,
		title: e.Version + " — " + e.Title,
		final: final,
		plain: plain,
	}
}

// RenderStatic composes the whole page fully revealed, for piping to a
// file or another program. No observer is constructed: without the
// interactive viewport there is no intersection mechanism, and nothing
// needs marking.
func RenderStatic(p *page.Page, width int) string {
	blocks, _ := buildBlocks(p, width)
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.final
	}
	return joinLines(out)
}
