// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Surfaces
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"} // Focused field border
	PanelColor         = lipgloss.AdaptiveColor{Light: "#EFEFEF", Dark: "#1F1F1F"} // Title bar background

	// Selection highlight inside the text field
	SelectionBgColor = lipgloss.AdaptiveColor{Light: "#D0E4F5", Dark: "#3A3A3A"}

	// Status
	StatusErrorColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Button colors
	ButtonTextColor           = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor      = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonDangerBgColor       = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor  = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}
)

// Styles derived from the color tokens. Rebuilt by Rebuild after theme
// overrides mutate the tokens above.
var (
	PrimaryButtonStyle        lipgloss.Style
	PrimaryButtonFocusedStyle lipgloss.Style
	DangerButtonStyle         lipgloss.Style
	DangerButtonFocusedStyle  lipgloss.Style
	PlaceholderStyle          lipgloss.Style
	SelectionStyle            lipgloss.Style
	CursorStyle               lipgloss.Style
	MutedStyle                lipgloss.Style
)

func init() {
	Rebuild()
}

// Rebuild recomputes the derived styles from the current color tokens.
func Rebuild() {
	baseButton := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButton.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButton.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	DangerButtonStyle = baseButton.
		Foreground(ButtonTextColor).
		Background(ButtonDangerBgColor)

	DangerButtonFocusedStyle = baseButton.
		Foreground(ButtonTextColor).
		Background(ButtonDangerFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	SelectionStyle = lipgloss.NewStyle().Background(SelectionBgColor)
	CursorStyle = lipgloss.NewStyle().Reverse(true)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
}
