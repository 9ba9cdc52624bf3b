// Package config defines the httpdex configuration, loaded through viper
// from a YAML file, environment variables (HTTPDEX_ prefix), and flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete httpdex configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DataConfig controls where the status code dataset comes from
type DataConfig struct {
	// Source is the dataset reference: empty for the embedded dataset,
	// an http(s) URL for a remote document, or a filesystem path.
	Source string `mapstructure:"source"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// SearchDebounceMs is how long typing must quiesce before the search
	// term is applied, in milliseconds (default: 300)
	SearchDebounceMs int `mapstructure:"search_debounce_ms"`
	// CopyFlashMs is how long the "copied" confirmation stays visible
	// after a clipboard copy, in milliseconds (default: 500)
	CopyFlashMs int `mapstructure:"copy_flash_ms"`
	// ShowReferenceURLs includes each code's documentation link in the
	// flat layout (default: true)
	ShowReferenceURLs bool `mapstructure:"show_reference_urls"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// SearchDebounce returns the search debounce as a time.Duration
func (c *TUIConfig) SearchDebounce() time.Duration {
	return time.Duration(c.SearchDebounceMs) * time.Millisecond
}

// CopyFlash returns the copy confirmation window as a time.Duration
func (c *TUIConfig) CopyFlash() time.Duration {
	return time.Duration(c.CopyFlashMs) * time.Millisecond
}

// DefaultConfig returns a Config populated with default values
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Source: "",
		},
		TUI: TUIConfig{
			SearchDebounceMs:  300,
			CopyFlashMs:       500,
			ShowReferenceURLs: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := DefaultConfig()

	// Data defaults
	viper.SetDefault("data.source", defaults.Data.Source)

	// TUI defaults
	viper.SetDefault("tui.search_debounce_ms", defaults.TUI.SearchDebounceMs)
	viper.SetDefault("tui.copy_flash_ms", defaults.TUI.CopyFlashMs)
	viper.SetDefault("tui.show_reference_urls", defaults.TUI.ShowReferenceURLs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load unmarshals the current viper state into a validated Config
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the directory where httpdex stores its configuration
// file, theme preference, custom palettes, and debug log
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "httpdex")
	}
	// Fall back to ~/.config/httpdex
	home, err := os.UserHomeDir()
	if err != nil {
		return ".httpdex"
	}
	return filepath.Join(home, ".config", "httpdex")
}
