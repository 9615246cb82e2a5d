// Package divider renders horizontal and vertical separator lines.
package divider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/jot/internal/ui/styles"
)

// lineStyle is resolved per call so theme reloads take effect.
func lineStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)
}

// Horizontal returns a full-width horizontal rule.
func Horizontal(width int) string {
	if width < 1 {
		width = 1
	}
	return lineStyle().Render(strings.Repeat("─", width))
}

// Vertical returns a vertical rule of the given height.
func Vertical(height int) string {
	if height < 1 {
		height = 1
	}
	return lineStyle().Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
}
