// Package reveal implements one-way visibility reveals: each watched
// element is marked revealed the first time enough of it intersects the
// viewport, and never un-marked afterwards. The presentation layer decides
// what a mark looks like; this package only tracks state.
package reveal

// ElementID identifies a watched element for the lifetime of a page.
type ElementID string

// Margin adjusts the viewport edges before intersection is computed,
// in lines. Positive values grow the viewport (earlier triggering),
// negative values shrink it.
type Margin struct {
	Top    int
	Bottom int
}

// Config fixes an observer's trigger geometry. The page uses
// DefaultConfig; Config stays a parameter so tests can probe the
// threshold boundary directly.
type Config struct {
	// Threshold is the minimum intersection ratio, inclusive, at which
	// an element counts as visible.
	Threshold float64
	// RootMargin is applied to the viewport bounds before ratios are
	// computed.
	RootMargin Margin
}

// DefaultConfig is the page's fixed trigger: 10% visibility, no margin.
func DefaultConfig() Config {
	return Config{Threshold: 0.1}
}

// Entry is one intersection record delivered by a source.
type Entry struct {
	Target ElementID
	// Ratio is the fraction of the element currently inside the
	// (margin-adjusted) viewport, in [0, 1].
	Ratio float64
	// Intersecting reports whether Ratio is at or above the observer
	// threshold. The observer acts on this flag, not on Ratio.
	Intersecting bool
}

// Option configures an Observer at construction.
type Option func(*Observer)

// WithOnMark sets a callback invoked exactly once per element, at the
// moment it is first marked revealed.
func WithOnMark(fn func(ElementID)) Option {
	return func(o *Observer) { o.onMark = fn }
}

// Observer flips each registered element to revealed on its first
// qualifying intersection record. Reveal state is monotonic: once an
// element is revealed it stays revealed no matter what later entries
// report.
//
// Not safe for concurrent use. Registration and observation both run on
// the UI event loop, matching the single-threaded model the component is
// written for.
type Observer struct {
	cfg      Config
	watched  map[ElementID]struct{}
	order    []ElementID
	revealed map[ElementID]struct{}
	onMark   func(ElementID)
}

// NewObserver builds an observer with the given trigger configuration.
func NewObserver(cfg Config, opts ...Option) *Observer {
	o := &Observer{
		cfg:      cfg,
		watched:  make(map[ElementID]struct{}),
		revealed: make(map[ElementID]struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Config returns the observer's trigger configuration.
func (o *Observer) Config() Config {
	return o.cfg
}

// Register adds elements to the observation snapshot. Registration is
// additive and idempotent; there is no unregister. Entries for targets
// that were never registered are ignored forever, so elements that
// appear after the startup snapshot are never observed.
func (o *Observer) Register(ids ...ElementID) {
	for _, id := range ids {
		if _, ok := o.watched[id]; ok {
			continue
		}
		o.watched[id] = struct{}{}
		o.order = append(o.order, id)
	}
}

// Observe processes one batch of intersection records. A qualifying
// entry marks its target revealed; a non-qualifying entry is a no-op —
// the observer never un-marks. Marking is idempotent, so redundant
// batches are harmless and nothing needs to be unregistered after
// firing.
func (o *Observer) Observe(entries ...Entry) {
	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		if _, ok := o.watched[e.Target]; !ok {
			continue
		}
		if _, ok := o.revealed[e.Target]; ok {
			continue
		}
		o.revealed[e.Target] = struct{}{}
		if o.onMark != nil {
			o.onMark(e.Target)
		}
	}
}

// Revealed reports whether the element has ever crossed the threshold.
func (o *Observer) Revealed(id ElementID) bool {
	_, ok := o.revealed[id]
	return ok
}

// RevealedCount returns how many watched elements have been revealed.
func (o *Observer) RevealedCount() int {
	return len(o.revealed)
}

// WatchedCount returns the size of the registration snapshot.
func (o *Observer) WatchedCount() int {
	return len(o.watched)
}

// Watched returns the registration snapshot in registration order.
func (o *Observer) Watched() []ElementID {
	out := make([]ElementID, len(o.order))
	copy(out, o.order)
	return out
}
