package commands

import (
	"strings"
	"time"

	"github.com/moasq/nanoprompt/internal/prompt"
	"github.com/moasq/nanoprompt/internal/terminal"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every prompt with the built-in book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo()
		},
	}
}

// runDemo is a menu loop over the demo book: each option leads to another
// primitive and control returns to the menu afterwards.
func (a *app) runDemo() error {
	book, err := a.loadBook()
	if err != nil {
		return err
	}
	menu, err := book.Menu("main")
	if err != nil {
		return err
	}

	terminal.Banner(Version)
	for {
		idx := a.term.Ask(menu.Question, toOptions(menu.Options), prompt.AskOpts{Exit: menu.Exit})
		if idx == prompt.Exit {
			return nil
		}
		switch menu.Options[idx].Label {
		case "Build":
			if a.term.AskConfirm("Build now?", true) {
				a.runBuild()
			} else {
				terminal.Info("Build skipped.")
			}
		case "Test":
			if spec, err := book.MultiSelect("tools"); err == nil {
				chosen := a.runMultiSelect(spec)
				terminal.Detail("Tools", joinOrNone(chosen))
			}
		case "Settings":
			if spec, err := book.Dashboard("settings"); err == nil {
				a.runDashboard(spec)
			}
		default:
			terminal.Info("Selected " + menu.Options[idx].Label)
		}
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

var buildSteps = []string{"Resolving packages", "Compiling", "Linking"}

// runBuild plays the demo build through the progress display. The pauses
// only exist so the spinner is visible on a terminal.
func (a *app) runBuild() {
	interactive := a.term.Interactive()
	p := terminal.NewProgress("Building", len(buildSteps), a.term.Width(), interactive)
	p.Start()
	for _, step := range buildSteps {
		p.Step(step)
		a.logger.Debug("build step", "step", step)
		if interactive {
			time.Sleep(400 * time.Millisecond)
		}
	}
	p.StopWithSuccess("Build finished.")
}
