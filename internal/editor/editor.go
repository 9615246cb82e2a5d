// Package editor implements the single-line text-editing core behind
// jot's input field: a mutable UTF-8 buffer, a byte-offset selection,
// and the multi-click word-selection escalation state machine.
//
// The editor is synchronous and exclusively owned: every command runs
// to completion before the next is accepted, and no locking happens
// internally. Hosts delivering input from multiple goroutines must
// serialize externally.
//
// Selection offsets always land on UTF-8 rune boundaries. New offsets
// are derived by rune iteration, never by raw byte arithmetic, so a
// multi-byte code point can never be split.
package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/jot/internal/clipboard"
	"github.com/zjrosen/jot/internal/log"
)

// Config wires the editor to its collaborators. All fields are
// optional; a nil clipboard makes copy/paste/cut no-ops and nil
// callbacks drop the corresponding notifications.
type Config struct {
	// Clipboard is the external get/set text service used by
	// Copy/Paste/Cut.
	Clipboard clipboard.Clipboard

	// OnChange is invoked after every command that may alter the text
	// or the selection.
	OnChange func(Change)

	// OnMovement is invoked when the user requests vertical movement
	// (the editor itself has no notion of lines above or below).
	OnMovement func(Movement)
}

// Editor owns one line of text and its selection.
type Editor struct {
	cfg  Config
	text string
	sel  Range

	// Multi-click escalation state: the index of the last clicked word
	// and how many consecutive clicks have landed on it.
	lastWordIndex int
	clickCount    int
}

// New creates an editor over the initial text with the caret collapsed
// at end-of-text. Invalid UTF-8 in the initial text is dropped.
func New(initial string, cfg Config) *Editor {
	initial = sanitize(initial)
	return &Editor{
		cfg:  cfg,
		text: initial,
		sel:  collapsedAt(len(initial)),
	}
}

// Text returns the current content.
func (e *Editor) Text() string {
	return e.text
}

// Selection returns the current selection range. A collapsed range is
// the caret position.
func (e *Editor) Selection() Range {
	return e.sel
}

// SelectedText returns the highlighted substring, empty for a caret.
func (e *Editor) SelectedText() string {
	return e.text[e.sel.Start:e.sel.End]
}

// WordRanges returns the word ranges of the current text. Recomputed on
// every call; the host uses this to lay out click targets.
func (e *Editor) WordRanges() []Range {
	return WordRanges(e.text)
}

// WordClick returns the click escalation state: the last clicked word
// index and the consecutive click count (0 when idle).
func (e *Editor) WordClick() (index, count int) {
	return e.lastWordIndex, e.clickCount
}

// SelectAll selects the entire text.
func (e *Editor) SelectAll() {
	e.sel = Range{Start: 0, End: len(e.text)}
	e.notifyChange()
}

// Copy writes the selected text to the clipboard. An empty selection
// copies an empty string. Clipboard failures are diagnostic only.
func (e *Editor) Copy() {
	if e.cfg.Clipboard == nil {
		return
	}
	if err := e.cfg.Clipboard.Write(e.SelectedText()); err != nil {
		log.Debug(log.CatClipboard, "clipboard write failed", "error", err)
	}
}

// Paste replaces the selection with the clipboard text and collapses
// the caret after it. An empty or unavailable clipboard is a no-op.
func (e *Editor) Paste() {
	if e.cfg.Clipboard == nil {
		return
	}
	text, ok := e.cfg.Clipboard.Read()
	if !ok {
		return
	}
	// The host sanitizes before handing text over; strip invalid bytes
	// here as well so the valid-UTF-8 invariant cannot be broken by a
	// misbehaving clipboard implementation.
	text = sanitize(text)
	if text == "" {
		return
	}
	e.replaceSelection(text)
}

// Cut copies the selection to the clipboard and deletes it. With a
// collapsed selection the text is unchanged and an empty string is
// copied.
func (e *Editor) Cut() {
	e.Copy()
	e.replaceSelection("")
}

// InsertText replaces the selection with s and collapses the caret
// after the inserted text. Empty input is a no-op.
func (e *Editor) InsertText(s string) {
	s = sanitize(s)
	if s == "" {
		return
	}
	e.replaceSelection(s)
}

// InsertNewline inserts a single line-break character, replacing any
// selected text, with the caret collapsing after it.
func (e *Editor) InsertNewline() {
	e.replaceSelection("\n")
}

// MoveLeft moves a collapsed caret one rune left; an expanded selection
// collapses to its start. No-op at offset 0.
func (e *Editor) MoveLeft() {
	if e.sel.Collapsed() {
		if e.sel.Start == 0 {
			return
		}
		_, size := utf8.DecodeLastRuneInString(e.text[:e.sel.Start])
		e.sel = collapsedAt(e.sel.Start - size)
	} else {
		e.sel = collapsedAt(e.sel.Start)
	}
	e.notifyChange()
}

// MoveRight mirrors MoveLeft at the end boundary.
func (e *Editor) MoveRight() {
	if e.sel.Collapsed() {
		if e.sel.End == len(e.text) {
			return
		}
		_, size := utf8.DecodeRuneInString(e.text[e.sel.End:])
		e.sel = collapsedAt(e.sel.End + size)
	} else {
		e.sel = collapsedAt(e.sel.End)
	}
	e.notifyChange()
}

// Backspace deletes the rune before a collapsed caret, or the whole
// selection when expanded. No-op for a caret at offset 0.
func (e *Editor) Backspace() {
	if e.sel.Collapsed() {
		if e.sel.Start == 0 {
			return
		}
		_, size := utf8.DecodeLastRuneInString(e.text[:e.sel.Start])
		start := e.sel.Start - size
		e.text = e.text[:start] + e.text[e.sel.End:]
		e.sel = collapsedAt(start)
		e.resetClick()
		e.notifyChange()
		return
	}
	e.replaceSelection("")
}

// ClickWord records a click on the word at index and applies the click
// escalation: a second consecutive click selects the word, the third is
// reserved for line selection (intentionally inert in a single-line
// field), the fourth selects all and restarts the cycle. Clicking a
// different word restarts the count at 1. An index outside the current
// word ranges is a no-op.
func (e *Editor) ClickWord(index int) {
	words := WordRanges(e.text)
	if index < 0 || index >= len(words) {
		log.Debug(log.CatEditor, "click outside word ranges", "index", index, "words", len(words))
		return
	}

	if index == e.lastWordIndex {
		e.clickCount++
	} else {
		e.clickCount = 1
	}

	switch e.clickCount {
	case 2:
		e.sel = words[index]
	case 3:
		// Line selection tier: a single-line field has nothing beyond
		// the text itself, and select-all owns the next tier.
	case 4:
		e.clickCount = 0
		e.sel = Range{Start: 0, End: len(e.text)}
	}

	e.lastWordIndex = index
	e.notifyChange()
}

// SetCaret collapses the selection at the given byte offset, snapped to
// the nearest rune boundary. Used by the host's hit-testing to place
// the caret on single clicks; it does not disturb the click counter.
func (e *Editor) SetCaret(offset int) {
	e.sel = collapsedAt(snapToBoundary(e.text, offset))
	e.notifyChange()
}

// SetSelection sets the selection with both offsets snapped to rune
// boundaries and reordered if necessary.
func (e *Editor) SetSelection(r Range) {
	start := snapToBoundary(e.text, r.Start)
	end := snapToBoundary(e.text, r.End)
	if start > end {
		start, end = end, start
	}
	e.sel = Range{Start: start, End: end}
	e.notifyChange()
}

// RequestMovement reports an Up/Down request to the host. The buffer is
// untouched: what lies above or below the field is the host's concern.
func (e *Editor) RequestMovement(d Direction) {
	if e.cfg.OnMovement != nil {
		e.cfg.OnMovement(Movement{Direction: d})
	}
}

// SetText replaces the whole text, collapsing the caret at end-of-text.
func (e *Editor) SetText(s string) {
	e.text = sanitize(s)
	e.sel = collapsedAt(len(e.text))
	e.resetClick()
	e.notifyChange()
}

// Reset clears the text and collapses the selection at 0, e.g. after
// the host submits the field's content.
func (e *Editor) Reset() {
	e.text = ""
	e.sel = collapsedAt(0)
	e.resetClick()
	e.notifyChange()
}

// replaceSelection substitutes s for the selected span and collapses
// the caret after it. Every text mutation funnels through here or
// Backspace, so the click counter reset stays in one place.
func (e *Editor) replaceSelection(s string) {
	e.text = e.text[:e.sel.Start] + s + e.text[e.sel.End:]
	e.sel = collapsedAt(e.sel.Start + len(s))
	e.resetClick()
	e.notifyChange()
}

func (e *Editor) resetClick() {
	e.lastWordIndex = 0
	e.clickCount = 0
}

func (e *Editor) notifyChange() {
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(Change{Text: e.text, Selection: e.sel})
	}
}

// sanitize drops invalid UTF-8 byte sequences. The editor's contract
// assumes valid Unicode; host boundaries (paste, initial text) are
// where invalid input can arrive.
func sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}
