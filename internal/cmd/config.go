package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/httpdex/httpdex/internal/config"
	"github.com/httpdex/httpdex/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify httpdex configuration",
	Long: `View or modify httpdex configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  httpdex config set tui.search_debounce_ms 250
  httpdex config set logging.level debug

Valid keys:
  data.source             - Dataset source: http(s) URL or file path
                            (empty uses the embedded catalog)
  tui.search_debounce_ms  - Delay before a search keystroke filters
  tui.copy_flash_ms       - How long the copied-symbol flash shows
  tui.show_reference_urls - Show documentation links per code (true/false)
  logging.enabled         - Write a debug log file (true/false)
  logging.level           - Log level: ` + strings.Join(logging.ValidLevels(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/httpdex/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func configFile() string {
	return filepath.Join(config.ConfigDir(), "config.yaml")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Println("Current configuration:")
	fmt.Println()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Printf("Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Printf("Config file: (none - using defaults)\n")
	}
	fmt.Println()

	fmt.Println("data:")
	if cfg.Data.Source == "" {
		fmt.Printf("  source: (embedded catalog)\n")
	} else {
		fmt.Printf("  source: %s\n", cfg.Data.Source)
	}

	fmt.Println("tui:")
	fmt.Printf("  search_debounce_ms: %d\n", cfg.TUI.SearchDebounceMs)
	fmt.Printf("  copy_flash_ms: %d\n", cfg.TUI.CopyFlashMs)
	fmt.Printf("  show_reference_urls: %v\n", cfg.TUI.ShowReferenceURLs)

	fmt.Println("logging:")
	fmt.Printf("  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Printf("  level: %s\n", cfg.Logging.Level)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	validKeys := map[string]string{
		"data.source":             "string",
		"tui.search_debounce_ms":  "int",
		"tui.copy_flash_ms":       "int",
		"tui.show_reference_urls": "bool",
		"logging.enabled":         "bool",
		"logging.level":           "string",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'httpdex config set --help' to see valid keys", key)
	}

	var typedValue interface{}
	switch keyType {
	case "string":
		if key == "logging.level" && !slices.Contains(logging.ValidLevels(), strings.ToLower(value)) {
			return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(logging.ValidLevels(), ", "))
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	}

	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	if err := viper.WriteConfigAs(configFile()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Set %s = %v\n", key, typedValue)
	fmt.Printf("Config saved to %s\n", configFile())

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()

	if _, err := os.Stat(configFile()); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'httpdex config set' to modify values", configFile())
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configContent := `# httpdex configuration

# Dataset settings
data:
  # Where to read the status code catalog from.
  # Empty uses the embedded catalog. Accepts an http(s) URL or a file path.
  source: ""

# TUI (terminal user interface) settings
tui:
  # Delay in milliseconds before a search keystroke re-filters the list
  search_debounce_ms: 300
  # How long the copied-symbol confirmation shows, in milliseconds
  copy_flash_ms: 500
  # Show the documentation link for each status code
  show_reference_urls: true

# Debug logging (written to the config directory as debug.log)
logging:
  enabled: true
  level: info
`

	if err := os.WriteFile(configFile(), []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile())
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(configFile())
	return nil
}
