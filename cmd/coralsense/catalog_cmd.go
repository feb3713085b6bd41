package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/coralsense"
	"github.com/yacobolo/coralsense/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print every utility class the theme produces",
	Long: `Print the full completion catalog grouped by category.
Use --category to restrict the output and --json for tooling.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	f := catalogCmd.Flags()
	f.String("category", "", "Only print entries in this category")
	f.Bool("variants", false, "Include variant entries")
	f.Bool("json", false, "Print entries as JSON")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}

	entries := p.Catalog()
	if withVariants, _ := cmd.Flags().GetBool("variants"); withVariants {
		entries = append(entries, p.Variants()...)
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	useColors := coralsense.ShouldUseColors(getBoolWithFallback("color", "color", false))
	for i, g := range catalog.GroupByCategory(entries) {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%d)\n", coralsense.RenderStyle(coralsense.StyleCyan, g.Category, useColors), len(g.Entries))
		for _, e := range g.Entries {
			fmt.Fprintf(out, "  %-28s %s\n", e.Label, e.CSS)
		}
	}
	return nil
}
