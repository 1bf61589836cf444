package commands

import (
	"errors"
	"strings"

	"github.com/moasq/nanoprompt/internal/config"
	"github.com/moasq/nanoprompt/internal/prompt"
)

// loadBook reads the configured prompt book, falling back to the built-in
// demo when none is configured.
func (a *app) loadBook() (*config.Book, error) {
	book, err := config.LoadBook(a.cfg.Book)
	if errors.Is(err, config.ErrNoBook) {
		a.logger.Debug("using built-in demo book")
		return config.DemoBook(), nil
	}
	return book, err
}

func argOr(args []string, def string) string {
	if len(args) > 0 {
		return args[0]
	}
	return def
}

func toOptions(specs []config.OptionSpec) []prompt.Option {
	options := make([]prompt.Option, len(specs))
	for i, s := range specs {
		options[i] = prompt.Option{Label: s.Label, Description: s.Description, Help: s.Help}
	}
	return options
}

func toSections(specs []config.SectionSpec) []prompt.DashboardSection {
	sections := make([]prompt.DashboardSection, len(specs))
	for i, s := range specs {
		items := make([]prompt.DashboardItem, len(s.Items))
		for j, it := range s.Items {
			items[j] = prompt.DashboardItem{Key: it.Key, Label: it.Label, Value: it.Value, Help: it.Help}
		}
		sections[i] = prompt.DashboardSection{Title: s.Title, Items: items}
	}
	return sections
}

func toActions(specs []config.ActionSpec) []prompt.DashboardAction {
	actions := make([]prompt.DashboardAction, len(specs))
	for i, s := range specs {
		actions[i] = prompt.DashboardAction{Key: s.Key, Label: s.Label}
	}
	return actions
}

// cloneDashboard copies the sections so edits do not touch the book.
func cloneDashboard(d config.DashboardSpec) config.DashboardSpec {
	out := d
	out.Sections = make([]config.SectionSpec, len(d.Sections))
	for i, s := range d.Sections {
		out.Sections[i] = config.SectionSpec{Title: s.Title, Items: append([]config.ItemSpec(nil), s.Items...)}
	}
	return out
}

// isPathItem reports whether an item holds a file system path and should
// be edited with path completion.
func isPathItem(it config.ItemSpec) bool {
	for _, hint := range []string{"path", "dir", "file"} {
		if strings.Contains(strings.ToLower(it.Key+" "+it.Label), hint) {
			return true
		}
	}
	return strings.HasPrefix(it.Value, "/") || strings.HasPrefix(it.Value, "./") || strings.HasPrefix(it.Value, "~")
}
