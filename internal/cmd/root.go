// Package cmd wires up the httpdex command line interface.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/httpdex/httpdex/internal/config"
	"github.com/httpdex/httpdex/internal/logging"
	"github.com/httpdex/httpdex/internal/theme"
	"github.com/httpdex/httpdex/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "httpdex",
	Short: "Interactive HTTP status code reference",
	Long: `httpdex is a terminal reference for HTTP status codes.
Search by code, message, or symbol; filter by category; switch between
flat, compact, and grouped layouts; copy a code's symbol to the clipboard.`,
	RunE: runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/httpdex/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().String("data", "", "dataset source: http(s) URL or file path (default embedded)")
	_ = viper.BindPFlag("data.source", rootCmd.Flags().Lookup("data"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/httpdex")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HTTPDEX")
	// Replace dots with underscores for nested keys in env vars
	// e.g., HTTPDEX_TUI_SEARCH_DEBOUNCE_MS for tui.search_debounce_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	dir := config.ConfigDir()

	log := newLogger(cfg, dir)
	defer log.Close()

	store := theme.NewStore(dir)

	app := tui.New(cfg, store, dir, log)
	if err := app.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}

// newLogger builds the debug logger per config; logging problems never
// stop the viewer.
func newLogger(cfg *config.Config, dir string) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.Discard()
	}
	log, err := logging.New(dir, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return logging.Discard()
	}
	return log
}
