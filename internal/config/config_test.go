package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestDefaults sanity-checks the shipped defaults.
func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, "Type here...", cfg.UI.Placeholder)
	require.True(t, cfg.UI.ShowHelp)
	require.Equal(t, 100, cfg.UI.MaxHistory)
	require.False(t, cfg.Debug)
	require.NoError(t, cfg.Validate())
}

// TestFlattenedColors_Nested flattens nested maps to dot keys.
func TestFlattenedColors_Nested(t *testing.T) {
	theme := ThemeConfig{
		Colors: map[string]any{
			"text": map[string]any{
				"primary": "#FF0000",
				"muted":   "#00FF00",
			},
			"selection.background": "#0000FF",
		},
	}

	flat := theme.FlattenedColors()

	require.Equal(t, "#FF0000", flat["text.primary"])
	require.Equal(t, "#00FF00", flat["text.muted"])
	require.Equal(t, "#0000FF", flat["selection.background"])
}

// TestValidate_BadMode rejects unknown theme modes.
func TestValidate_BadMode(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Mode = "sepia"

	require.Error(t, cfg.Validate())
}

// TestValidate_BadColor rejects non-hex color values.
func TestValidate_BadColor(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.Colors = map[string]any{"text.primary": "red"}

	require.Error(t, cfg.Validate())
}

// TestValidate_NegativeHistory rejects negative caps.
func TestValidate_NegativeHistory(t *testing.T) {
	cfg := Defaults()
	cfg.UI.MaxHistory = -1

	require.Error(t, cfg.Validate())
}

// TestWriteDefaultConfig_CreatesFile writes the commented template.
func TestWriteDefaultConfig_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "placeholder")

	// The template must parse as valid YAML.
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
}

// TestSave_RoundTrip writes and re-reads the full config.
func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Defaults()
	cfg.UI.Placeholder = "What happened?"
	cfg.Theme.Mode = "dark"

	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	ui, ok := doc["ui"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "What happened?", ui["placeholder"])
}
