package config

import (
	"github.com/spf13/viper"
)

// Load reads the config file at path into a Config over the defaults.
// It uses a fresh viper instance so reloads (config file watching) do
// not disturb the process-wide viper owned by the cmd package.
func Load(path string) (Config, error) {
	defaults := Defaults()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("history_path", defaults.HistoryPath)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("ui.placeholder", defaults.UI.Placeholder)
	v.SetDefault("ui.show_help", defaults.UI.ShowHelp)
	v.SetDefault("ui.max_history", defaults.UI.MaxHistory)

	if err := v.ReadInConfig(); err != nil {
		return defaults, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, err
	}
	return cfg, nil
}
