package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vela-lang/vela/internal/reporter"
	"github.com/vela-lang/vela/pkg/vela"
)

var astCmd = &cobra.Command{
	Use:   "ast <source>",
	Short: "Parse source and print the resulting AST's text rendering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}
		var errs []error
		program, err := vela.Astify(src, &errs)

		b := reporter.NewBuilder()
		b.AddAll(errs)
		if !b.Empty() {
			b.PrintErrors(cmd.ErrOrStderr())
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), program.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
