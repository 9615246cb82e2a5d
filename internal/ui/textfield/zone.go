package textfield

import "fmt"

// Zone ID constants for mouse click detection in the text field.
// Uses bubblezone for hit testing on the field body and each word.
// zoneFieldPrefix is the prefix for field zone IDs.
const zoneFieldPrefix = "textfield:"

// fieldZoneID returns the zone ID covering the whole field body.
func (m Model) fieldZoneID() string {
	return zoneFieldPrefix + m.id
}

// wordZoneID returns the zone ID for the word at index.
func (m Model) wordZoneID(index int) string {
	return fmt.Sprintf("%s%s:word:%d", zoneFieldPrefix, m.id, index)
}
