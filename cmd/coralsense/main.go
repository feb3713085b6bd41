// Command coralsense is the CLI for the utility-class engine.
package main

import (
	"fmt"
	"os"

	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Commands that already reported their findings only need the exit code.
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
