package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/zjrosen/jot/internal/config"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func TestApplyTheme_OverridesKnownToken(t *testing.T) {
	prev := TextPrimaryColor
	defer func() {
		TextPrimaryColor = prev
		Rebuild()
	}()

	ApplyTheme(config.ThemeConfig{
		Colors: map[string]any{
			"text.primary": "#FF0000",
		},
	})

	assert.Equal(t, "#FF0000", TextPrimaryColor.Light)
	assert.Equal(t, "#FF0000", TextPrimaryColor.Dark)
}

func TestApplyTheme_NestedKeys(t *testing.T) {
	prev := SelectionBgColor
	defer func() {
		SelectionBgColor = prev
		Rebuild()
	}()

	ApplyTheme(config.ThemeConfig{
		Colors: map[string]any{
			"selection": map[string]any{
				"background": "#123456",
			},
		},
	})

	assert.Equal(t, "#123456", SelectionBgColor.Dark)
}

func TestApplyTheme_UnknownKeyIgnored(t *testing.T) {
	before := TextPrimaryColor

	ApplyTheme(config.ThemeConfig{
		Colors: map[string]any{
			"no.such.token": "#ABCDEF",
		},
	})

	assert.Equal(t, before, TextPrimaryColor)
}

func TestApplyTheme_RebuildsDerivedStyles(t *testing.T) {
	prev := ButtonPrimaryBgColor
	defer func() {
		ButtonPrimaryBgColor = prev
		Rebuild()
	}()

	before := PrimaryButtonStyle.Render("x")

	ApplyTheme(config.ThemeConfig{
		Colors: map[string]any{
			"button.primary": "#00FF00",
		},
	})

	// The derived style must render with the new background.
	assert.NotEqual(t, before, PrimaryButtonStyle.Render("x"))
}

func TestColorTokens_CoverEveryExportedColor(t *testing.T) {
	tokens := colorTokens()
	assert.Len(t, tokens, 13)
	for key, ptr := range tokens {
		assert.NotNil(t, ptr, "token %s", key)
	}
}
