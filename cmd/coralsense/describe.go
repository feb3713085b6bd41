package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/coralsense"
)

var describeCmd = &cobra.Command{
	Use:               "describe <class>",
	Aliases:           []string{"hover"},
	Short:             "Show the CSS and color a utility class produces",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeClassArgs,
	RunE:              runDescribe,
}

func init() {
	describeCmd.Flags().Bool("json", false, "Print hover information as JSON")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	p, err := loadProvider(cmd.Context())
	if err != nil {
		return err
	}

	info := p.Hover(args[0])
	if info == nil {
		return errors.Errorf("unknown utility class %q", args[0])
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintln(out, coralsense.HoverMarkdown(info))
	return nil
}
