package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vela-lang/vela/pkg/token"
	"github.com/vela-lang/vela/pkg/vela"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <source>",
	Short: "Print the token stream produced by scanning source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for tok := range vela.Tokenify(src) {
			fmt.Fprintf(out, "%-12s %-8q %s\n", tok.Type, tok.Literal, tok.Pos)
			if tok.Type == token.EOF {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
