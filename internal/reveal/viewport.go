package reveal

// Extent is an element's vertical placement within the composed page:
// the first line it occupies (page coordinates, 0-based) and its height
// in lines.
type Extent struct {
	Top    int
	Height int
}

// ViewportSource is the intersection mechanism for a line-oriented
// viewport. It holds the placement of every observed element and, on
// each Dispatch, computes one batch of intersection records against the
// current window and delivers it to its observer.
//
// Placement happens once, when the page is laid out; Dispatch runs on
// every scroll or resize. Like the observer it feeds, a source is bound
// to the single UI event loop and is not safe for concurrent use.
type ViewportSource struct {
	observer *Observer
	extents  map[ElementID]Extent
}

// NewViewportSource binds a source to the observer it reports to.
func NewViewportSource(o *Observer) *ViewportSource {
	return &ViewportSource{
		observer: o,
		extents:  make(map[ElementID]Extent),
	}
}

// Place records an element's extent and registers it with the observer.
// Placing the same element again updates its extent without creating a
// second registration.
func (s *ViewportSource) Place(id ElementID, ext Extent) {
	s.extents[id] = ext
	s.observer.Register(id)
}

// Dispatch computes intersection records for the window starting at line
// top with the given height, and feeds them to the observer as one
// batch. Records follow the observer's registration order.
func (s *ViewportSource) Dispatch(top, height int) {
	if height <= 0 {
		return
	}
	cfg := s.observer.Config()
	winTop := top - cfg.RootMargin.Top
	winBottom := top + height + cfg.RootMargin.Bottom

	ids := s.observer.Watched()
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		ext, ok := s.extents[id]
		if !ok {
			continue
		}
		ratio := intersectionRatio(ext, winTop, winBottom)
		entries = append(entries, Entry{
			Target:       id,
			Ratio:        ratio,
			Intersecting: qualifies(ratio, cfg.Threshold),
		})
	}
	s.observer.Observe(entries...)
}

// intersectionRatio returns the fraction of the extent inside the window
// [winTop, winBottom). Zero-height extents never intersect.
func intersectionRatio(ext Extent, winTop, winBottom int) float64 {
	if ext.Height <= 0 {
		return 0
	}
	lo := ext.Top
	if winTop > lo {
		lo = winTop
	}
	hi := ext.Top + ext.Height
	if winBottom < hi {
		hi = winBottom
	}
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(ext.Height)
}

// qualifies applies the threshold. A ratio exactly at the threshold
// counts as intersecting; with a zero threshold, any visible line does.
func qualifies(ratio, threshold float64) bool {
	if threshold <= 0 {
		return ratio > 0
	}
	return ratio >= threshold
}
