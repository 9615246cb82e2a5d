package button

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestView_ContainsLabel(t *testing.T) {
	b := New("btn-label", "Copy", Primary)

	view := zone.Scan(b.View())

	assert.Contains(t, view, "Copy")
}

func TestFocus_ChangesRendering(t *testing.T) {
	b := New("btn-focus", "Clear", Danger)
	unfocused := zone.Scan(b.View())

	b.Focus()
	assert.True(t, b.Focused())
	focused := zone.Scan(b.View())

	assert.NotEqual(t, unfocused, focused)
}

func TestClicked_InsideZone(t *testing.T) {
	b := New("btn-click", "Copy", Primary)
	_ = zone.Scan(b.View())

	var z *zone.ZoneInfo
	for retries := 0; retries < 10; retries++ {
		z = zone.Get("btn-click")
		if z != nil && !z.IsZero() {
			break
		}
		_ = zone.Scan(b.View())
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, z)
	require.False(t, z.IsZero())

	msg := tea.MouseMsg{
		X:      z.StartX + 1,
		Y:      z.StartY,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionRelease,
	}
	assert.True(t, b.Clicked(msg))

	msg.X = z.EndX + 10
	msg.Y = z.EndY + 10
	assert.False(t, b.Clicked(msg))
}
