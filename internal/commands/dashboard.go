package commands

import (
	"fmt"
	"strings"

	"github.com/moasq/nanoprompt/internal/config"
	"github.com/moasq/nanoprompt/internal/prompt"
	"github.com/moasq/nanoprompt/internal/terminal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard [name]",
		Short: "Run a dashboard from the prompt book in a menu loop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook()
			if err != nil {
				return err
			}
			spec, err := book.Dashboard(argOr(args, "settings"))
			if err != nil {
				return err
			}
			final := a.runDashboard(spec)
			terminal.Header(final.Title)
			terminal.Divider()
			for _, s := range final.Sections {
				for _, it := range s.Items {
					terminal.Detail(it.Label, it.Value)
				}
			}
			return nil
		},
	}
}

// runDashboard re-invokes the dashboard until the user backs out. Items are
// edited in place; the last edited item stays highlighted and the outcome of
// the previous step is shown as status. It returns the edited copy.
func (a *app) runDashboard(original config.DashboardSpec) config.DashboardSpec {
	spec := cloneDashboard(original)
	last, status := "", ""
	for {
		res, ok := a.term.AskDashboard(spec.Title, toSections(spec.Sections), toActions(spec.Actions),
			prompt.DashboardOpts{Selected: last, Status: status})
		if !ok {
			return spec
		}
		a.logger.Debug("dashboard result", "kind", res.Kind, "key", res.Key)

		switch res.Kind {
		case prompt.ResultItem:
			last = res.Key
			status = a.editItem(&spec, res.Key)
		case prompt.ResultAction:
			status = a.runAction(&spec, original, res.Key)
		}
	}
}

func (a *app) editItem(spec *config.DashboardSpec, key string) string {
	item, ok := spec.Item(key)
	if !ok {
		return ""
	}
	var value string
	if isPathItem(item) {
		value = a.term.AskPath(item.Label, item.Value)
	} else {
		value = a.term.AskValue(item.Label, item.Value)
	}
	if value == item.Value {
		return terminal.Style(item.Label+" unchanged", terminal.Dim)
	}
	spec.SetValue(key, value)
	return terminal.Style("✓", terminal.Green) + fmt.Sprintf(" %s set to %s", item.Label, value)
}

// runAction handles the demo actions: r resets every value, s shows the
// current values as YAML. Any other action is only reported.
func (a *app) runAction(spec *config.DashboardSpec, original config.DashboardSpec, key string) string {
	switch strings.ToLower(key) {
	case "r":
		*spec = cloneDashboard(original)
		return "Values reset."
	case "s":
		values := map[string]string{}
		for _, s := range spec.Sections {
			for _, it := range s.Items {
				values[it.Key] = it.Value
			}
		}
		out, err := yaml.Marshal(values)
		if err != nil {
			return terminal.Style("✗", terminal.Red) + " " + err.Error()
		}
		return strings.TrimRight(string(out), "\n")
	}
	for _, act := range spec.Actions {
		if act.Key == key {
			return fmt.Sprintf("Action %q triggered.", act.Label)
		}
	}
	return ""
}
