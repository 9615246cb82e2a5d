package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/jot/internal/log"
)

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# jot configuration
#
# history_path: where submitted entries are stored (SQLite).
# Default: ~/.config/jot/history.db
#history_path: /path/to/history.db

# debug: write a structured debug log to jot-debug.log
debug: false

ui:
  # placeholder shown while the field is empty
  placeholder: "Type here..."
  # show the keybinding footer
  show_help: true
  # how many persisted entries to load on start
  max_history: 100

theme:
  # force light or dark rendering; empty uses terminal detection
  #mode: dark
  # override individual color tokens
  #colors:
  #  text.primary: "#CCCCCC"
  #  selection.background: "#3A3A3A"
`
}

// WriteDefaultConfig creates a config file at the given path with
// default settings and comments. Creates the parent directory if it
// doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// Save writes the full configuration to path as YAML, atomically
// (write to temp, then rename).
func Save(configPath string, cfg Config) error {
	doc := map[string]any{
		"history_path": cfg.HistoryPath,
		"debug":        cfg.Debug,
		"ui": map[string]any{
			"placeholder": cfg.UI.Placeholder,
			"show_help":   cfg.UI.ShowHelp,
			"max_history": cfg.UI.MaxHistory,
		},
		"theme": map[string]any{
			"mode":   cfg.Theme.Mode,
			"colors": cfg.Theme.Colors,
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".jot.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
