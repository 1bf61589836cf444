package commands

import (
	"github.com/moasq/nanoprompt/internal/terminal"
	"github.com/spf13/cobra"
)

func newConfirmCmd(a *app) *cobra.Command {
	var def bool
	cmd := &cobra.Command{
		Use:   "confirm [question]",
		Short: "Ask a yes/no question",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.term.AskConfirm(argOr(args, "Continue?"), def) {
				terminal.Success("yes")
			} else {
				terminal.Info("no")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&def, "default", false, "answer used when Enter is pressed")
	return cmd
}
