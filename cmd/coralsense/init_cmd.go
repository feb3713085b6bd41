package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .coralsense.yaml config file",
	Long:  `Create a .coralsense.yaml configuration file in the current directory with sensible defaults.`,
	// Nothing to merge yet; skip the root config loading.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return errors.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return errors.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# coralsense configuration
# Docs: https://github.com/yacobolo/coralsense

# Shared settings
verbose: false
color: false

# Theme file (.yaml, .yml or .toml). Empty uses the built-in theme.
theme: ""

# Completion settings
complete:
  limit: 20

# Linting settings
lint:
  paths:
    - "**/*.html"
    - "**/*.templ"
    - "**/*.{jsx,tsx}"
  strict: false
  conflicts: true
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
