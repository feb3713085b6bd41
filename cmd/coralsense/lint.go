package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/coralsense"
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint utility classes in markup and component files",
	Long: `Scan files for class attributes and report unknown classes, bad variants,
malformed arbitrary values and conflicting classes.
Errors fail the run; with --strict any issue does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd, args)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultLintPaths, "File patterns to scan for class attributes")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("conflicts", true, "Report classes that set the same CSS property")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (coralsense:code) suffix on issues")
}

func runLint(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := loadProvider(ctx)
	if err != nil {
		return err
	}

	lintConfig := buildLintConfig()
	// Positional paths win over --paths and the config file
	if len(args) > 0 {
		lintConfig.ScanPaths = args
	}

	result, err := coralsense.Lint(ctx, afero.NewOsFs(), p, lintConfig)
	if err != nil {
		return errors.Errorf("lint failed: %w", err)
	}
	zerolog.Ctx(ctx).Debug().
		Int("files", result.FilesScanned).
		Int("classes", result.ClassesChecked).
		Int("issues", len(result.Issues)).
		Msg("lint finished")

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := coralsense.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := coralsense.WriteOutput(cmd.OutOrStdout(), result, format, lintConfig); err != nil {
			return err
		}
	}

	// Soft gate: errors fail the build, warnings only with --strict
	if result.Failed(lintConfig) {
		if lintConfig.Strict && result.ErrorCount == 0 && !quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "\nStrict mode: warnings are treated as failures")
		}
		return errFailed
	}

	return nil
}
