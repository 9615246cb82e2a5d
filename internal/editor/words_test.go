package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWordRanges_Basic covers the canonical segmentation cases.
func TestWordRanges_Basic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Range
	}{
		{name: "empty", text: "", want: nil},
		{name: "single word", text: "abc", want: []Range{{0, 3}}},
		{name: "two words", text: "foo bar", want: []Range{{0, 3}, {4, 7}}},
		{name: "only spaces", text: "  ", want: nil},
		{name: "underscore and digits", text: "a_b2 c", want: []Range{{0, 4}, {5, 6}}},
		{name: "leading and trailing boundaries", text: " hi ", want: []Range{{1, 3}}},
		{name: "punctuation splits", text: "a.b,c", want: []Range{{0, 1}, {2, 3}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, WordRanges(tt.text))
		})
	}
}

// TestWordRanges_Unicode verifies ranges are byte offsets over
// multi-byte letters and numbers.
func TestWordRanges_Unicode(t *testing.T) {
	// "héllo" is 6 bytes, "wörld" is 6 bytes, separated by one space.
	got := WordRanges("héllo wörld")
	require.Equal(t, []Range{{0, 6}, {7, 13}}, got)

	// CJK letters are word runes.
	got = WordRanges("日本 語")
	require.Equal(t, []Range{{0, 6}, {7, 10}}, got)
}

// TestWordRanges_OffsetsAreRuneBoundaries checks every emitted offset
// is a valid slicing point.
func TestWordRanges_OffsetsAreRuneBoundaries(t *testing.T) {
	text := "état_2 Ωmega über_42"
	for _, r := range WordRanges(text) {
		require.Equal(t, r.Start, snapToBoundary(text, r.Start))
		require.Equal(t, r.End, snapToBoundary(text, r.End))
		require.Less(t, r.Start, r.End)
	}
}

// TestWordRanges_NoOverlap verifies ranges are ordered and disjoint.
func TestWordRanges_NoOverlap(t *testing.T) {
	ranges := WordRanges("one two_2  three,four")
	for i := 1; i < len(ranges); i++ {
		require.GreaterOrEqual(t, ranges[i].Start, ranges[i-1].End)
	}
}

// TestWordRanges_Pure verifies repeated calls agree (no retained state).
func TestWordRanges_Pure(t *testing.T) {
	text := "same text twice"
	require.Equal(t, WordRanges(text), WordRanges(text))
}
