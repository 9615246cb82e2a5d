// Package titlebar renders the slim bar across the top of the app.
package titlebar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/jot/internal/ui/styles"
)

// Render draws the title bar at the given width. Overlong titles are
// truncated with an ellipsis.
func Render(title string, width int) string {
	if width < 1 {
		width = 1
	}

	// Account for one cell of padding each side.
	inner := max(width-2, 1)
	title = truncate.StringWithTail(title, uint(inner), "…")

	bar := lipgloss.NewStyle().
		Background(styles.PanelColor).
		Foreground(styles.TextPrimaryColor).
		Width(width).
		Padding(0, 1)

	return bar.Render(title)
}
