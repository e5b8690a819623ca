// Package config loads shell and engine settings from DOMINOES_* env
// vars and an optional yaml file.
package config

import "github.com/spf13/viper"

type Config struct {
	// LogLevel is a zerolog level name (debug, info, warn, ...).
	LogLevel string `mapstructure:"log_level"`
	// Seed, when nonzero, makes dealing deterministic. Zero means a
	// cryptographically seeded source.
	Seed int64 `mapstructure:"seed"`
	// MaxRedeals bounds the automatic reshuffles when neither hand
	// receives a double.
	MaxRedeals uint `mapstructure:"max_redeals"`
	// HistoryFile is where the readline shell keeps its input history.
	HistoryFile string `mapstructure:"history_file"`
}

// Load reads configuration from the environment and, when path is
// non-empty, from a yaml file at that path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("dominoes")
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("max_redeals", 100)
	v.SetDefault("history_file", "/tmp/dominoes_readline.tmp")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
