package commands

import (
	"github.com/moasq/nanoprompt/internal/terminal"
	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	var value string
	cmd := &cobra.Command{
		Use:   "edit [label]",
		Short: "Edit a single value with the line editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			got := a.term.AskValue(argOr(args, "Value"), value)
			terminal.Detail("Value", got)
			return nil
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "initial value, kept when the edit is cancelled")
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var (
		value string
		exts  []string
	)
	cmd := &cobra.Command{
		Use:   "path [label]",
		Short: "Enter a path with tab completion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			got := a.term.AskPath(argOr(args, "Path"), value, exts...)
			terminal.Detail("Path", got)
			return nil
		},
	}
	cmd.Flags().StringVar(&value, "value", "", "initial path")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "only complete files with these extensions (e.g. .json)")
	return cmd
}
