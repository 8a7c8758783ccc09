package page

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jaxpy/jaxpy-tour/internal/reveal"
)

// RenderOptions controls the one-time markdown render at startup.
type RenderOptions struct {
	// Width is the content wrap width in columns.
	Width int
	// Style is a glamour standard style name ("dark", "light", ...) or
	// "auto" to detect from the terminal background.
	Style string
}

// Render renders every section body to ANSI once and caches the result,
// along with an unstyled variant used for the reveal transition frames.
// Rendering happens at a fixed width so element extents stay stable for
// the lifetime of the page.
func (p *Page) Render(opts RenderOptions) error {
	if opts.Width <= 0 {
		opts.Width = 72
	}

	styled, err := newRenderer(opts.Style, opts.Width)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	plain, err := newRenderer("notty", opts.Width)
	if err != nil {
		return fmt.Errorf("plain renderer: %w", err)
	}

	for _, s := range p.Sections {
		out, err := styled.Render(s.Body)
		if err != nil {
			return fmt.Errorf("render section %s: %w", s.Slug, err)
		}
		p.rendered[s.ID] = trimBlock(out)

		raw, err := plain.Render(s.Body)
		if err != nil {
			return fmt.Errorf("render section %s (plain): %w", s.Slug, err)
		}
		p.plain[s.ID] = trimBlock(raw)
	}
	return nil
}

// Rendered returns the cached ANSI body for an element, or "" if Render
// has not run or the element has no markdown body.
func (p *Page) Rendered(id reveal.ElementID) string {
	return p.rendered[id]
}

// Plain returns the cached unstyled body for an element.
func (p *Page) Plain(id reveal.ElementID) string {
	return p.plain[id]
}

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	wrap := glamour.WithWordWrap(width)
	if style == "" || style == "auto" {
		return glamour.NewTermRenderer(glamour.WithAutoStyle(), wrap)
	}
	return glamour.NewTermRenderer(glamour.WithStandardStyle(style), wrap)
}

// trimBlock drops the blank lines glamour pads around a document so the
// page controls its own vertical rhythm.
func trimBlock(s string) string {
	return strings.Trim(s, "\n")
}
