package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vela-lang/vela/pkg/vela"
)

var jsMode string

var jsCmd = &cobra.Command{
	Use:   "js <source>",
	Short: "Transpile source to JS (inline, pretty, or json/ESTree-like mode)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}
		out, err := vela.Transformify(src, jsMode, nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	jsCmd.Flags().StringVar(&jsMode, "mode", "inline", `output mode: "inline", "pretty", or "json"`)
	rootCmd.AddCommand(jsCmd)
}
