package commands

import (
	"strings"

	"github.com/moasq/nanoprompt/internal/config"
	"github.com/moasq/nanoprompt/internal/prompt"
	"github.com/moasq/nanoprompt/internal/terminal"
	"github.com/spf13/cobra"
)

func newSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select [name]",
		Short: "Pick several items from a filterable grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			spec, err := book.MultiSelect(argOr(args, "tools"))
			if err != nil {
				return err
			}
			chosen := a.runMultiSelect(spec)
			if len(chosen) == 0 {
				terminal.Info("Nothing selected.")
				return nil
			}
			terminal.Success("Selected " + strings.Join(chosen, ", "))
			return nil
		},
	}
}

// runMultiSelect returns the chosen items in list order.
func (a *app) runMultiSelect(spec config.MultiSelectSpec) []string {
	selected := prompt.Selection{}
	for _, s := range spec.Selected {
		selected[s] = true
	}
	if !a.term.Interactive() {
		terminal.Warning("Multi-select needs an interactive terminal; keeping the current selection.")
	}
	a.term.AskMultiSelect(spec.Question, spec.Items, selected, func(item string, on bool) {
		a.logger.Debug("selection changed", "item", item, "selected", on)
	})

	var chosen []string
	for _, it := range spec.Items {
		if selected.Has(it) {
			chosen = append(chosen, it)
		}
	}
	return chosen
}
