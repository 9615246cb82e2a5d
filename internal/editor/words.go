package editor

import "unicode"

// WordRanges scans text and returns the byte-offset range of every
// maximal run of word runes (letters, numbers, underscore), in order.
// It is a pure function: ranges are recomputed from the current text on
// every call and never cached across edits.
func WordRanges(text string) []Range {
	var words []Range
	lastWasBoundary := true
	wordStart := 0

	for i, r := range text {
		if isWordRune(r) {
			if lastWasBoundary {
				wordStart = i
			}
			lastWasBoundary = false
		} else {
			if !lastWasBoundary {
				words = append(words, Range{Start: wordStart, End: i})
			}
			lastWasBoundary = true
		}
	}

	// Trailing word runs to the end of the text.
	if !lastWasBoundary {
		words = append(words, Range{Start: wordStart, End: len(text)})
	}

	return words
}

// isWordRune reports whether r belongs to a word: any Unicode letter or
// number, or the underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
