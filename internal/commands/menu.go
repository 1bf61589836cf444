package commands

import (
	"fmt"

	"github.com/moasq/nanoprompt/internal/prompt"
	"github.com/moasq/nanoprompt/internal/terminal"
	"github.com/spf13/cobra"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu [name]",
		Short: "Show a single-choice menu from the prompt book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			spec, err := book.Menu(argOr(args, "main"))
			if err != nil {
				return err
			}
			idx := a.term.Ask(spec.Question, toOptions(spec.Options), prompt.AskOpts{Exit: spec.Exit})
			if idx == prompt.Exit {
				terminal.Info("Nothing selected.")
				return nil
			}
			terminal.Success(fmt.Sprintf("Selected %s", spec.Options[idx].Label))
			return nil
		},
	}
}
