package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vela-lang/vela/internal/interp"
	"github.com/vela-lang/vela/pkg/vela"
)

var evalCmd = &cobra.Command{
	Use:   "eval <source>",
	Short: "Evaluate source and print its resulting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}
		val, err := vela.Evalify(src, interp.New())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), val.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
