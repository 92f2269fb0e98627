// Package config loads the planear configuration from file, environment,
// and defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/afuentes/planear/internal/planner"
)

// envKeyReplacer turns nested keys into env-var segments
// (server.url → PLANEAR_SERVER_URL).
var envKeyReplacer = strings.NewReplacer(".", "_")

// Config is the complete planear configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// ServerConfig points the client at the planning service.
type ServerConfig struct {
	// URL is the base URL of the planning service
	URL string `mapstructure:"url"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Level is the logrus level name ("debug", "info", "warn", "error")
	Level string `mapstructure:"level"`
	// File receives log output in TUI mode (the terminal belongs to the UI).
	// Empty disables file logging.
	File string `mapstructure:"file"`
}

// UIConfig controls display behavior
type UIConfig struct {
	// Color enables colored output (default: true)
	Color bool `mapstructure:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{URL: planner.DefaultBaseURL},
		Logging: LoggingConfig{Level: "warn", File: ""},
		UI:      UIConfig{Color: true},
	}
}

// SetDefaults registers the default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("server.url", defaults.Server.URL)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("ui.color", defaults.UI.Color)
}

// Init wires viper to the config file and environment and loads the
// result. A missing config file is not an error; everything has defaults.
// Environment variables use the PLANEAR_ prefix (PLANEAR_SERVER_URL, ...).
func Init() (*Config, error) {
	SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("planear")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return Load()
}

// Load reads the configuration from viper into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dir returns the path to the user's config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planear")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planear"
	}
	return filepath.Join(home, ".config", "planear")
}

// File returns the path to the config file.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}
