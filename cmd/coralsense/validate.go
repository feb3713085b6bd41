package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/coralsense"
	"github.com/yacobolo/coralsense/internal/diagnostics"
)

var validateCmd = &cobra.Command{
	Use:   "validate <class>...",
	Short: "Check utility classes and explain what is wrong with them",
	Long: `Validate each class on its own, then check the set for conflicting classes
as if they shared one class attribute. Exits 1 if any class is invalid.`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeClassArgs,
	RunE:              runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := coralsense.ShouldUseColors(getBoolWithFallback("color", "color", false))
	out := cmd.OutOrStdout()

	// One synthetic attribute so conflicts are reported with their offsets.
	diags := p.Diagnose(`class="` + strings.Join(args, " ") + `"`)

	failed := false
	for _, d := range diags {
		if d.Severity == diagnostics.SeverityError {
			failed = true
		}
		if quiet {
			continue
		}

		label := coralsense.RenderStyle(coralsense.StyleRed, "error", useColors)
		if d.Severity != diagnostics.SeverityError {
			label = coralsense.RenderStyle(coralsense.StyleYellow, d.Severity.String(), useColors)
		}
		fmt.Fprintf(out, "%s: %s: %s %s\n", d.ClassName, label, d.Message,
			coralsense.RenderStyle(coralsense.StyleGray, "("+d.Code+")", useColors))
		if len(d.Suggestions) > 0 {
			fmt.Fprintf(out, "  did you mean: %s\n", strings.Join(d.Suggestions, ", "))
		}
	}

	if !quiet && len(diags) == 0 {
		fmt.Fprintln(out, coralsense.RenderStyle(coralsense.StyleGreen, "✓", useColors), "all classes are valid")
	}

	if failed {
		return errFailed
	}
	return nil
}
