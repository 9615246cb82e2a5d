// Package cmd wires the CLI flags and configuration to the TUI.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/jot/internal/app"
	"github.com/zjrosen/jot/internal/config"
	"github.com/zjrosen/jot/internal/history"
	"github.com/zjrosen/jot/internal/log"
	"github.com/zjrosen/jot/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "jot",
	Short:   "A terminal ui for quick note capture",
	Long:    `A terminal user interface for jotting down one-line notes: type, press enter, and the entry lands in a local history you can recall and search.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/jot/config.yaml)")
	rootCmd.Flags().String("history", "",
		"path to the history database (default: ~/.config/jot/history.db)")
	rootCmd.Flags().Bool("debug", false,
		"enable debug logging to jot-debug.log")

	// Bind flags to viper
	_ = viper.BindPFlag("history_path", rootCmd.Flags().Lookup("history"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("history_path", defaults.HistoryPath)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("ui.placeholder", defaults.UI.Placeholder)
	viper.SetDefault("ui.show_help", defaults.UI.ShowHelp)
	viper.SetDefault("ui.max_history", defaults.UI.MaxHistory)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .jot/config.yaml (current directory)
		// 2. ~/.config/jot/config.yaml (user config)
		if _, err := os.Stat(".jot/config.yaml"); err == nil {
			viper.SetConfigFile(".jot/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "jot"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a commented default
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := defaultConfigPath()
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// defaultConfigPath is where a fresh config gets written when none exists.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jot/config.yaml"
	}
	return filepath.Join(home, ".config", "jot", "config.yaml")
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	debug := cfg.Debug || os.Getenv("JOT_DEBUG") != ""
	if debug {
		cleanup, err := log.InitWithTeaLog("jot-debug.log", "jot")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	styles.ApplyTheme(cfg.Theme)

	historyPath := cfg.HistoryPath
	if historyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		historyPath = filepath.Join(home, ".config", "jot", "history.db")
	}

	// A broken history database degrades to an unsaved session rather
	// than refusing to start.
	store, err := history.Open(historyPath)
	if err != nil {
		log.Warn(log.CatHistory, "History unavailable", "error", err, "path", historyPath)
		store = nil
	} else {
		defer store.Close()
	}

	configFilePath := viper.ConfigFileUsed()

	// Mouse hit-testing zones live in the global bubblezone manager.
	zone.NewGlobal()
	defer zone.Close()

	model := app.New(cfg, configFilePath, store, debug)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher and listener resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
