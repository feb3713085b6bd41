package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coralsense",
	Short: "Completions, diagnostics and color tooling for utility classes",
	Long: `Answers the questions an editor asks about utility-class strings:
what completes a prefix, whether a class is valid (and why not),
and what color and contrast information a class carries.`,
	// Config and the context logger are shared by every subcommand.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		logger := newLogger()
		cmd.SetContext(logger.WithContext(cmd.Context()))
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".coralsense.yaml", "Config file path")
	rootCmd.PersistentFlags().String("theme", "", "Theme file (.yaml, .yml or .toml); empty uses the built-in theme")

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger writes human-readable logs to stderr. The level follows
// --verbose and --quiet from the merged config.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case getBoolWithFallback("quiet", "quiet", false):
		level = zerolog.Disabled
	case getBoolWithFallback("verbose", "verbose", false):
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
