package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/jot/internal/config"
	"github.com/zjrosen/jot/internal/editor"
	"github.com/zjrosen/jot/internal/history"
	"github.com/zjrosen/jot/internal/ui/textfield"
)

func upMovement() editor.Movement {
	return editor.Movement{Direction: editor.Up}
}

func downMovement() editor.Movement {
	return editor.Movement{Direction: editor.Down}
}

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// TestMain initializes the global zone manager for all tests in this package.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// createTestModel creates a Model without a config watcher, backed by a
// temp history database.
func createTestModel(t *testing.T) Model {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "jot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	m := New(config.Defaults(), "", store, false)
	m.width = 80
	m.height = 24
	return m
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = newModel.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestApp_TypingReachesField(t *testing.T) {
	m := createTestModel(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h', 'i'}})
	m = newModel.(Model)

	assert.Equal(t, "hi", m.field.Value())
}

func TestApp_SubmitPersistsAndClears(t *testing.T) {
	m := createTestModel(t)
	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("note")})
	m = newModel.(Model)

	newModel, cmd := m.Update(textfield.SubmitMsg{Text: "note"})
	m = newModel.(Model)
	require.NotNil(t, cmd)

	// The field clears immediately; the entry lands via entryAddedMsg.
	assert.Equal(t, "", m.field.Value())

	added, ok := cmd().(entryAddedMsg)
	require.True(t, ok)
	require.NoError(t, added.err)
	assert.Equal(t, "note", added.entry.Text)

	newModel, _ = m.Update(added)
	m = newModel.(Model)
	require.Len(t, m.entries, 1)
	assert.Equal(t, "note", m.entries[0].Text)
}

func TestApp_SubmitBlankIsIgnored(t *testing.T) {
	m := createTestModel(t)

	_, cmd := m.Update(textfield.SubmitMsg{Text: "   "})

	assert.Nil(t, cmd)
}

func TestApp_MovementRecallsHistory(t *testing.T) {
	m := createTestModel(t)
	for _, text := range []string{"first", "second"} {
		e, err := m.store.Add(text)
		require.NoError(t, err)
		newModel, _ := m.Update(entryAddedMsg{entry: e})
		m = newModel.(Model)
	}

	// Draft in progress, then recall.
	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("draft")})
	m = newModel.(Model)

	newModel, _ = m.Update(textfield.MovementMsg{Movement: upMovement()})
	m = newModel.(Model)
	assert.Equal(t, "second", m.field.Value())

	newModel, _ = m.Update(textfield.MovementMsg{Movement: upMovement()})
	m = newModel.(Model)
	assert.Equal(t, "first", m.field.Value())

	// Walking down returns to the draft.
	newModel, _ = m.Update(textfield.MovementMsg{Movement: downMovement()})
	m = newModel.(Model)
	assert.Equal(t, "second", m.field.Value())

	newModel, _ = m.Update(textfield.MovementMsg{Movement: downMovement()})
	m = newModel.(Model)
	assert.Equal(t, "draft", m.field.Value())
}

func TestApp_QuitKey(t *testing.T) {
	m := createTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewRendersSections(t *testing.T) {
	m := createTestModel(t)

	view := m.View()

	assert.Contains(t, view, "jot")
	assert.Contains(t, view, "no entries yet")
	assert.Contains(t, view, "Copy")
	assert.Contains(t, view, "Clear")
}

func TestApp_HistoryLoadedMsgPopulatesEntries(t *testing.T) {
	m := createTestModel(t)
	_, err := m.store.Add("persisted")
	require.NoError(t, err)

	cmd := m.loadHistoryCmd()
	require.NotNil(t, cmd)
	loaded, ok := cmd().(historyLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	newModel, _ := m.Update(loaded)
	m = newModel.(Model)
	require.Len(t, m.entries, 1)
	assert.Equal(t, "persisted", m.entries[0].Text)
}
