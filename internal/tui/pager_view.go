package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/pagenav/internal/pagination"
)

// ellipsisGlyph is what an ellipsis token looks like on screen.
const ellipsisGlyph = "…"

// RenderTokens draws the page window of s. Numbers use the page style, the
// current page the current style, and ellipses are static separators.
func RenderTokens(s pagination.Snapshot, v Variant) string {
	styles := StylesFor(v)

	parts := make([]string, 0, len(s.Tokens))
	for _, tok := range s.Tokens {
		switch {
		case tok.IsEllipsis():
			parts = append(parts, styles.Ellipsis.Render(ellipsisGlyph))
		case tok.Page == s.CurrentPage:
			parts = append(parts, styles.Current.Render(fmt.Sprintf(styles.CurrentFormat, tok.Page)))
		default:
			parts = append(parts, styles.Page.Render(tok.String()))
		}
	}
	return strings.Join(parts, styles.Separator)
}

// RenderPager draws the step controls around the page window. A step control
// at a boundary is drawn disabled.
func RenderPager(s pagination.Snapshot, v Variant) string {
	styles := StylesFor(v)
	tokens := RenderTokens(s, v)
	if styles.Previous == "" && styles.Next == "" {
		return tokens
	}

	prev := styles.Enabled.Render(styles.Previous)
	if !s.HasPrevious {
		prev = styles.Disabled.Render(styles.Previous)
	}
	next := styles.Enabled.Render(styles.Next)
	if !s.HasNext {
		next = styles.Disabled.Render(styles.Next)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "  ", tokens, "  ", next)
}

// RenderRangeLine draws the "Showing X-Y of Z" line.
func RenderRangeLine(s pagination.Snapshot, v Variant) string {
	return StylesFor(v).Range.Render(s.RangeText())
}

// RenderHelp lists the key bindings of the pager.
func RenderHelp() string {
	return SubtleStyle.Render("←/→ page • g/G first/last • ↑/↓ row • / go to page • q quit")
}
