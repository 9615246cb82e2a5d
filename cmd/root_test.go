package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/jot/internal/config"
)

func TestDefaultConfigPath_UnderUserConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := defaultConfigPath()

	assert.Equal(t, filepath.Join("jot", "config.yaml"), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}

func TestWriteDefaultConfig_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jot", "config.yaml")

	require.NoError(t, config.WriteDefaultConfig(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.Defaults().UI.Placeholder, cfg.UI.Placeholder)
}

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.Flags().Lookup("history"))
	assert.NotNil(t, rootCmd.Flags().Lookup("debug"))
}
