package prompt

import (
	"fmt"
	"strings"

	"github.com/moasq/nanoprompt/internal/terminal"
)

// DashboardItem is one selectable row. Key identifies it across calls.
type DashboardItem struct {
	Key   string
	Label string
	Value string
	Help  string
}

// DashboardSection groups items under an optional title.
type DashboardSection struct {
	Title string
	Items []DashboardItem
}

// DashboardAction binds a single-character hotkey at dashboard level.
type DashboardAction struct {
	Key   string
	Label string
}

// ResultKind tells which half of a DashboardResult is set.
type ResultKind int

const (
	ResultItem ResultKind = iota
	ResultAction
)

// DashboardResult is either an item key or an action key.
type DashboardResult struct {
	Kind ResultKind
	Key  string
}

// DashboardOpts configures AskDashboard.
type DashboardOpts struct {
	// Selected is the item key to highlight first, typically the key
	// returned by the previous call in a menu loop.
	Selected string
	// Status is pre-formatted text shown below the actions.
	Status string
}

const dashboardHint = "↑↓ navigate · enter select · esc back"

// AskDashboard shows a dashboard on the default terminal.
func AskDashboard(title string, sections []DashboardSection, actions []DashboardAction, opts DashboardOpts) (DashboardResult, bool) {
	return Default().AskDashboard(title, sections, actions, opts)
}

// AskDashboard shows the sections and actions and returns the chosen item or
// action. ok is false when the user backs out.
func (t *Terminal) AskDashboard(title string, sections []DashboardSection, actions []DashboardAction, opts DashboardOpts) (DashboardResult, bool) {
	d := newDashboard(title, sections, actions, opts)
	if !t.interactive {
		return t.dashboardFallback(d)
	}
	release, err := t.acquire(true)
	if err != nil {
		t.logger.Debug("dashboard falls back to line input", "err", err)
		return t.dashboardFallback(d)
	}
	defer release()

	r := &region{t: t}
	defer r.rewind()
	for {
		r.draw(d.lines(t.Width()), d.height())
		key, ok := t.next()
		if !ok {
			return DashboardResult{}, false
		}
		if res, done, ok := d.handle(key); done {
			return res, ok
		}
	}
}

type dashboard struct {
	title    string
	sections []DashboardSection
	actions  []DashboardAction
	items    []DashboardItem
	status   []string
	selected int
	maxHelp  int
}

func newDashboard(title string, sections []DashboardSection, actions []DashboardAction, opts DashboardOpts) *dashboard {
	d := &dashboard{
		title:    title,
		sections: sections,
		actions:  actions,
		status:   splitLines(opts.Status),
	}
	for _, s := range sections {
		d.items = append(d.items, s.Items...)
	}
	for i, it := range d.items {
		if opts.Selected != "" && it.Key == opts.Selected {
			d.selected = i
		}
		if n := len(splitLines(it.Help)); n > d.maxHelp {
			d.maxHelp = n
		}
	}
	return d
}

// action returns the action bound to key, matching case-insensitively.
func (d *dashboard) action(key Key) (DashboardAction, bool) {
	if key.Kind != KeyChar {
		return DashboardAction{}, false
	}
	for _, a := range d.actions {
		if strings.EqualFold(a.Key, key.Text) {
			return a, true
		}
	}
	return DashboardAction{}, false
}

// handle applies one key. done reports a result; ok is false for "back".
// Actions are matched before anything else.
func (d *dashboard) handle(key Key) (res DashboardResult, done, ok bool) {
	if a, found := d.action(key); found {
		return DashboardResult{Kind: ResultAction, Key: a.Key}, true, true
	}
	switch key.Kind {
	case KeyUp:
		if d.selected > 0 {
			d.selected--
		}
	case KeyDown:
		if d.selected < len(d.items)-1 {
			d.selected++
		}
	case KeyEnter:
		if len(d.items) > 0 {
			return DashboardResult{Kind: ResultItem, Key: d.items[d.selected].Key}, true, true
		}
	case KeyEscape, KeyBackspace, KeyDelete:
		return DashboardResult{}, true, false
	case KeyChar:
		if n, isDigit := key.IsDigit(); isDigit && n >= 1 && n <= len(d.items) {
			d.selected = n - 1
			return DashboardResult{Kind: ResultItem, Key: d.items[d.selected].Key}, true, true
		}
	}
	return DashboardResult{}, false, false
}

// sectionRows counts the rows of the item list: a divider before every
// section but the first, a title row when set, and one row per item.
func (d *dashboard) sectionRows() int {
	n := 0
	for i, s := range d.sections {
		if i > 0 {
			n++
		}
		if s.Title != "" {
			n++
		}
		n += len(s.Items)
	}
	return n
}

func (d *dashboard) height() int {
	h := 1 + d.sectionRows() + 1 + d.maxHelp
	if len(d.actions) > 0 {
		h += 2
	}
	if len(d.status) > 0 {
		h += 1 + len(d.status)
	}
	return h
}

func (d *dashboard) lines(width int) []string {
	avail := width - 1
	labels := make([]string, len(d.items))
	for i, it := range d.items {
		labels[i] = it.Label
	}
	numW := digits(len(d.items))
	fixed := rowIndent + numW + 2
	labelW := longest(labels)
	if labelW > avail-fixed {
		labelW = avail - fixed
	}
	valueW := avail - fixed - labelW - 2

	lines := make([]string, 0, d.height())
	lines = append(lines, "  "+terminal.Style(truncate(d.title, avail-2), terminal.Bold))

	idx := 0
	for si, s := range d.sections {
		if si > 0 {
			rule := avail - 4
			if rule > 40 {
				rule = 40
			}
			if rule < 1 {
				rule = 1
			}
			lines = append(lines, "  "+terminal.Style(strings.Repeat("─", rule), terminal.Dim))
		}
		if s.Title != "" {
			lines = append(lines, "  "+terminal.Style(truncate(s.Title, avail-2), terminal.Bold, terminal.Blue))
		}
		for _, it := range s.Items {
			sel := idx == d.selected
			label := pad(it.Label, labelW)
			if sel {
				label = terminal.Style(label, terminal.Bold)
			}
			num := strings.Repeat(" ", numW+2)
			if idx < 9 {
				num = fmt.Sprintf("%*d. ", numW, idx+1)
			}
			row := rowPrefix(sel) + num + label
			if it.Value != "" && valueW > 0 {
				row += "  " + terminal.Style(truncate(it.Value, valueW), terminal.Cyan)
			}
			lines = append(lines, row)
			idx++
		}
	}

	if len(d.actions) > 0 {
		parts := make([]string, len(d.actions))
		for i, a := range d.actions {
			parts[i] = fmt.Sprintf("[%s] %s", a.Key, a.Label)
		}
		lines = append(lines, "", "  "+truncate(strings.Join(parts, "  "), avail-2))
	}
	lines = append(lines, "  "+terminal.Style(truncate(dashboardHint, avail-2), terminal.Dim))

	help := ""
	if len(d.items) > 0 {
		help = d.items[d.selected].Help
	}
	lines = append(lines, helpArea(help, d.maxHelp, avail)...)

	if len(d.status) > 0 {
		lines = append(lines, "")
		for _, l := range d.status {
			lines = append(lines, "  "+l)
		}
	}
	return lines
}
