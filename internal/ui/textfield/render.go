package textfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/jot/internal/editor"
	"github.com/zjrosen/jot/internal/ui/styles"
)

// newlineSymbol stands in for a literal line break in the rendered
// field; the field body is always one display line.
const newlineSymbol = "↵"

// View renders the field: selection background, reverse-video caret,
// and a bubblezone mark around every word so clicks resolve to word
// indices. The whole body is marked as the field zone for caret
// placement clicks.
// Note: Do NOT call zone.Scan() here - it must be called at the app
// level after the field is positioned, so zones register with correct
// screen coordinates.
func (m Model) View() string {
	text := m.ed.Text()
	if text == "" {
		return zone.Mark(m.fieldZoneID(), m.viewEmpty())
	}

	sel := m.ed.Selection()
	words := m.ed.WordRanges()

	var b strings.Builder
	pos := 0
	for i, w := range words {
		b.WriteString(m.renderSpan(text[pos:w.Start], pos, sel))
		b.WriteString(zone.Mark(m.wordZoneID(i), m.renderSpan(text[w.Start:w.End], w.Start, sel)))
		pos = w.End
	}
	b.WriteString(m.renderSpan(text[pos:], pos, sel))

	// Caret at end-of-text highlights a synthetic trailing cell.
	if m.focused && sel.Collapsed() && sel.Start == len(text) {
		b.WriteString(styles.CursorStyle.Render(" "))
	}

	body := lipgloss.NewStyle().Width(m.width).Render(b.String())
	return zone.Mark(m.fieldZoneID(), body)
}

// viewEmpty renders the placeholder, with the caret over its first
// cell when focused.
func (m Model) viewEmpty() string {
	style := lipgloss.NewStyle().Width(m.width)
	if !m.focused {
		return style.Render(styles.PlaceholderStyle.Render(m.placeholder))
	}
	if m.placeholder == "" {
		return style.Render(styles.CursorStyle.Render(" "))
	}
	first, rest := splitFirstCluster(m.placeholder)
	return style.Render(styles.CursorStyle.Render(first) + styles.PlaceholderStyle.Render(rest))
}

// renderSpan renders text[base:base+len(span)] cluster by cluster,
// applying the selection background and the caret style by absolute
// byte offset.
func (m Model) renderSpan(span string, base int, sel editor.Range) string {
	if span == "" {
		return ""
	}
	var b strings.Builder
	pos := 0
	g := uniseg.NewGraphemes(span)
	for g.Next() {
		cluster := g.Str()
		offset := base + pos
		visible := cluster
		if cluster == "\n" {
			visible = newlineSymbol
		}
		switch {
		case !sel.Collapsed() && sel.Contains(offset):
			b.WriteString(styles.SelectionStyle.Render(visible))
		case m.focused && sel.Collapsed() && sel.Start == offset:
			b.WriteString(styles.CursorStyle.Render(visible))
		case cluster == "\n":
			b.WriteString(styles.MutedStyle.Render(visible))
		default:
			b.WriteString(visible)
		}
		pos += len(cluster)
	}
	return b.String()
}

// splitFirstCluster splits off the first grapheme cluster of s.
func splitFirstCluster(s string) (first, rest string) {
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return " ", ""
	}
	c := g.Str()
	return c, s[len(c):]
}
