package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/httpdex/httpdex/internal/engine"
	"github.com/httpdex/httpdex/internal/source"
	"github.com/httpdex/httpdex/internal/status"
	"github.com/httpdex/httpdex/internal/view"
)

var (
	listSearch     string
	listCategories []string
	listGrouped    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print status codes to stdout",
	Long: `Print the status code catalog to stdout, optionally filtered.

Examples:
  httpdex list
  httpdex list --search not
  httpdex list --category "Client Error" --category "Server Error"
  httpdex list --grouped`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by code prefix or message/symbol substring")
	listCmd.Flags().StringArrayVar(&listCategories, "category", nil, "filter by category (repeatable)")
	listCmd.Flags().BoolVar(&listGrouped, "grouped", false, "group output by category")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ds, err := source.Load(context.Background(), viper.GetString("data.source"))
	if err != nil {
		return fmt.Errorf("failed to load status codes: %w", err)
	}

	eng := engine.New(ds.Catalog)
	eng.SetSearchTerm(listSearch)
	for _, label := range listCategories {
		// Unknown labels toggle fine; they just never match anything.
		eng.ToggleCategory(status.ParseCategory(label))
	}

	mode := view.ModeFlat
	if listGrouped {
		mode = view.ModeGrouped
	}

	projection := view.Project(eng.Filtered(), mode)
	if projection.Empty {
		fmt.Println("No matching status codes")
		return nil
	}

	if listGrouped {
		for i, g := range projection.Groups {
			if i > 0 {
				fmt.Println()
			}
			color.New(color.Bold, color.Underline).Printf("%s (%d)\n", g.Category, len(g.Codes))
			for _, c := range g.Codes {
				printCode(c)
			}
		}
		return nil
	}

	for _, c := range projection.Flat {
		printCode(c)
	}
	return nil
}

// categoryColor maps a category to its terminal color.
func categoryColor(cat status.Category) *color.Color {
	switch cat {
	case status.CategoryInformational:
		return color.New(color.FgBlue)
	case status.CategorySuccess:
		return color.New(color.FgGreen)
	case status.CategoryRedirection:
		return color.New(color.FgYellow)
	case status.CategoryClientError:
		return color.New(color.FgMagenta)
	case status.CategoryServerError:
		return color.New(color.FgRed)
	}
	return color.New(color.Faint)
}

func printCode(c status.Code) {
	categoryColor(c.Category).Printf("%3d", c.Code)
	fmt.Printf("  %-35s :%s\n", c.Message, c.Symbol)
}
