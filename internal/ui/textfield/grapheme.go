package textfield

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// The editor core speaks byte offsets; the terminal speaks cells. The
// helpers below translate between the two, iterating grapheme clusters
// so combining marks and wide CJK glyphs map to the right columns.

// clusterWidth returns the cell width of one grapheme cluster. A line
// break is drawn as a one-cell symbol, so it counts as one cell here to
// keep click hit-testing aligned with the rendered line.
func clusterWidth(cluster string) int {
	if cluster == "\n" {
		return 1
	}
	return runewidth.StringWidth(cluster)
}

// displayWidth returns the number of terminal cells s occupies.
func displayWidth(s string) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

// byteOffsetForCell maps a cell column to the byte offset of the
// grapheme cluster covering that column. Columns past the end of the
// text map to len(s), so a click in the trailing gap places the caret
// at end-of-text.
func byteOffsetForCell(s string, cell int) int {
	if cell <= 0 {
		return 0
	}
	col := 0
	offset := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := clusterWidth(g.Str())
		if cell < col+w {
			return offset
		}
		col += w
		offset += len(g.Str())
	}
	return len(s)
}

// cellForByteOffset maps a byte offset to its cell column. Offsets
// inside a grapheme cluster resolve to the cluster's first column.
func cellForByteOffset(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	col := 0
	pos := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if pos >= offset {
			return col
		}
		col += clusterWidth(g.Str())
		pos += len(g.Str())
	}
	return col
}
