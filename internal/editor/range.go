package editor

import "unicode/utf8"

// Range is a half-open byte-offset interval [Start, End) into the
// editor's text. Both offsets always land on UTF-8 rune boundaries.
type Range struct {
	Start int
	End   int
}

// Collapsed reports whether the range is a caret (no highlighted text).
func (r Range) Collapsed() bool {
	return r.Start == r.End
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether the byte offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// collapsedAt returns a caret range at the given offset.
func collapsedAt(offset int) Range {
	return Range{Start: offset, End: offset}
}

// snapToBoundary clamps offset to [0, len(s)] and walks backward to the
// nearest rune boundary. Offsets derived from rune iteration are always
// valid; this guards offsets that arrive from the host (hit-testing).
func snapToBoundary(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return len(s)
	}
	for offset > 0 && !utf8.RuneStart(s[offset]) {
		offset--
	}
	return offset
}
