package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/httpdex/httpdex/internal/config"
	"github.com/httpdex/httpdex/internal/theme"
	"github.com/httpdex/httpdex/internal/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `List the built-in theme variants and report any custom palette
overrides found in the config directory.`,
	RunE: runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	current := theme.NewStore(configDir).Current()

	for _, v := range []theme.Variant{theme.Dark, theme.Light} {
		marker := " "
		if v == current {
			marker = "*"
		}

		kind := "built-in"
		path := styles.PalettePath(configDir, v)
		if pf, err := styles.LoadPaletteFile(path); err == nil {
			kind = fmt.Sprintf("custom (%s)", pf.Name)
		}

		if v == current {
			color.New(color.Bold).Printf("%s %-6s  %s\n", marker, v, kind)
		} else {
			fmt.Printf("%s %-6s  %s\n", marker, v, kind)
		}
	}

	fmt.Printf("\nCustom palettes are read from %s/themes/<variant>.yaml\n", configDir)
	return nil
}
