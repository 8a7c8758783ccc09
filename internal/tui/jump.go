package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// jumpState is the type-to-filter section picker.
type jumpState struct {
	active bool
	query  string
	cursor int
}

// jumpItem is one pickable section.
type jumpItem struct {
	slug  string
	title string
	top   int // page line to scroll to
}

// rankItems orders items by how well they match the query. Substring
// matches rank first, then by normalized edit distance against the
// title; an empty query keeps page order.
func rankItems(items []jumpItem, query string) []jumpItem {
	out := make([]jumpItem, len(items))
	copy(out, items)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	score := func(it jumpItem) float64 {
		title := strings.ToLower(it.title)
		if strings.Contains(title, q) || strings.Contains(it.slug, q) {
			return 0
		}
		dist := levenshtein.ComputeDistance(q, title)
		maxlen := len(title)
		if len(q) > maxlen {
			maxlen = len(q)
		}
		if maxlen == 0 {
			return 1
		}
		return float64(dist) / float64(maxlen)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i]) < score(out[j])
	})
	return out
}
