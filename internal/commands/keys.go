package commands

import (
	"fmt"

	"github.com/moasq/nanoprompt/internal/prompt"
	"github.com/spf13/cobra"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print decoded key events until q is pressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, "Press keys to see how they decode; q quits.\r\n")
			return a.term.WatchKeys(func(k prompt.Key) bool {
				if k.Kind == prompt.KeyChar {
					fmt.Fprintf(out, "  %s U+%04X\r\n", k, k.Rune())
				} else {
					fmt.Fprintf(out, "  %s\r\n", k)
				}
				return !(k.Kind == prompt.KeyChar && k.Text == "q")
			})
		},
	}
}
