// Package config provides configuration types, defaults, and
// persistence for jot.
package config

import (
	"fmt"
	"regexp"
)

// Config holds all configuration options for jot.
type Config struct {
	// HistoryPath is the SQLite database for submitted entries.
	// Empty means the default under the user config directory.
	HistoryPath string `mapstructure:"history_path"`

	// Debug enables the structured debug log.
	Debug bool `mapstructure:"debug"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	// Placeholder is shown in the input field while it is empty.
	Placeholder string `mapstructure:"placeholder"`

	// ShowHelp toggles the keybinding footer.
	ShowHelp bool `mapstructure:"show_help"`

	// MaxHistory caps how many persisted entries are loaded on start.
	MaxHistory int `mapstructure:"max_history"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Mode forces light or dark rendering. If empty, uses terminal
	// detection. Valid values: "light", "dark", "".
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens. Supports both nested
	// YAML structure and quoted dot notation:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// or:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		HistoryPath: "",
		Debug:       false,
		UI: UIConfig{
			Placeholder: "Type here...",
			ShowHelp:    true,
			MaxHistory:  100,
		},
		Theme: ThemeConfig{},
	}
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the theme settings for values the renderer cannot use.
func (c Config) Validate() error {
	switch c.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", c.Theme.Mode)
	}

	for key, val := range c.Theme.FlattenedColors() {
		if !hexColorPattern.MatchString(val) {
			return fmt.Errorf("theme color %q: %q is not a #RRGGBB hex color", key, val)
		}
	}

	if c.UI.MaxHistory < 0 {
		return fmt.Errorf("ui.max_history must not be negative, got %d", c.UI.MaxHistory)
	}

	return nil
}
