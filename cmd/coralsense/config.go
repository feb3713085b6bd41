package main

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/coralsense"
	"github.com/yacobolo/coralsense/internal/theme"
)

const defaultConfigPath = ".coralsense.yaml"

var k = koanf.New(".")

// errFailed signals a command that already printed its findings and only
// needs a non-zero exit.
var errFailed = errors.Base("check failed")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (the root PersistentPreRunE does).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set).
	// Defaults stay out of koanf so they cannot shadow file or env values.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return errors.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errors.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("CORALSENSE_", ".", func(s string) string {
		// CORALSENSE_LINT_STRICT -> lint.strict
		// CORALSENSE_THEME -> theme
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CORALSENSE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return errors.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// loadProvider builds the engine for the configured theme, or the built-in
// theme when none is set.
func loadProvider(ctx context.Context) (*coralsense.Provider, error) {
	path := getStringWithFallback("theme", "theme", "")
	if path == "" {
		zerolog.Ctx(ctx).Debug().Msg("using built-in theme")
		return coralsense.NewProvider(theme.Default()), nil
	}

	t, err := theme.Load(ctx, afero.NewOsFs(), path)
	if err != nil {
		return nil, err
	}
	return coralsense.NewProvider(t), nil
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() coralsense.LintConfig {
	// Handle paths: check flag key first, then config key
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = defaultLintPaths
	}

	return coralsense.LintConfig{
		ScanPaths:          scanPaths,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Conflicts:          getBoolWithFallback("conflicts", "lint.conflicts", true),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

var defaultLintPaths = []string{
	"**/*.html",
	"**/*.templ",
	"**/*.{jsx,tsx}",
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
