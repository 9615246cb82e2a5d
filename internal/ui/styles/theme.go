package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/jot/internal/config"
	"github.com/zjrosen/jot/internal/log"
)

// colorTokens maps dot-notation config keys to the color variables they
// override.
func colorTokens() map[string]*lipgloss.AdaptiveColor {
	return map[string]*lipgloss.AdaptiveColor{
		"text.primary":         &TextPrimaryColor,
		"text.muted":           &TextMutedColor,
		"text.placeholder":     &TextPlaceholderColor,
		"border.default":       &BorderDefaultColor,
		"border.focus":         &BorderFocusColor,
		"panel":                &PanelColor,
		"selection.background": &SelectionBgColor,
		"status.error":         &StatusErrorColor,
		"button.text":          &ButtonTextColor,
		"button.primary":       &ButtonPrimaryBgColor,
		"button.primary_focus": &ButtonPrimaryFocusBgColor,
		"button.danger":        &ButtonDangerBgColor,
		"button.danger_focus":  &ButtonDangerFocusBgColor,
	}
}

// ApplyTheme applies mode forcing and color overrides from the config,
// then rebuilds the derived styles. Unknown keys are logged and skipped
// so a stale config cannot break rendering.
func ApplyTheme(theme config.ThemeConfig) {
	switch theme.Mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	tokens := colorTokens()
	for key, val := range theme.FlattenedColors() {
		token, ok := tokens[key]
		if !ok {
			log.Warn(log.CatConfig, "Unknown theme color token", "key", key)
			continue
		}
		// A single hex value overrides both light and dark variants.
		token.Light = val
		token.Dark = val
	}

	Rebuild()
}
