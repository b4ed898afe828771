package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by build flags; it has no other build metadata to carry
// since this CLI makes no version-banner promises.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "vela",
	Short:   "Scan, parse, evaluate or transpile a small expression-oriented language",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func readSource(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one source argument")
	}
	return args[0], nil
}
