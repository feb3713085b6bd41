package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [prefix]",
	Short: "List utility classes that complete a prefix",
	Long: `Print the catalog entries matching a prefix, exact matches first.
After a variant prefix such as "md:hover:" only utilities are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runComplete,
}

func init() {
	f := completeCmd.Flags()
	f.Int("limit", 20, "Maximum completions to print (0=unlimited)")
	f.Bool("variants", false, "Complete variant names instead of utilities")
	f.Bool("json", false, "Print completions as JSON")
}

func runComplete(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}

	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}
	inVariant, _ := cmd.Flags().GetBool("variants")

	items := p.Completions(prefix, inVariant)
	if limit := getIntWithFallback("limit", "complete.limit", 20); limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for _, e := range items {
		fmt.Fprintf(out, "%-28s %s\n", e.Label, e.CSS)
	}
	return nil
}

// completeClassArgs offers catalog labels for class arguments during shell
// completion. Variant prefixes typed so far are kept on each candidate.
func completeClassArgs(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := loadProvider(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var variants string
	if i := strings.LastIndex(toComplete, ":"); i >= 0 {
		variants = toComplete[:i+1]
	}

	items := p.Completions(toComplete, false)
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, variants+e.Label+"\t"+e.Description)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
