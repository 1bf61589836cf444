package prompt

import (
	"fmt"

	"github.com/moasq/nanoprompt/internal/terminal"
)

// Option is one choice offered by Ask.
type Option struct {
	Label       string
	Description string
	// Help is optional multi-line text shown below the list while the
	// option is highlighted.
	Help string
}

// AskOpts configures Ask.
type AskOpts struct {
	// Exit labels the appended last option "Exit" instead of "Back".
	Exit bool
}

// Exit is the index Ask returns when the appended Back/Exit option is
// chosen or the prompt is cancelled.
const Exit = -1

const (
	pointer   = "❯ "
	rowIndent = 4
	menuHint  = "↑↓ navigate · enter select · 1-9 jump · ⌫ back"
)

// rowPrefix is the four-column lead-in of a list row.
func rowPrefix(selected bool) string {
	if selected {
		return "  " + terminal.Style(pointer, terminal.Bold, terminal.Cyan)
	}
	return "    "
}

// Ask shows a single-choice menu on the default terminal.
func Ask(question string, options []Option, opts AskOpts) int {
	return Default().Ask(question, options, opts)
}

// Ask shows question and options and returns the chosen index, or Exit.
func (t *Terminal) Ask(question string, options []Option, opts AskOpts) int {
	m := newMenu(question, options, opts.Exit)
	if !t.interactive {
		return t.askFallback(m)
	}
	release, err := t.acquire(true)
	if err != nil {
		t.logger.Debug("menu falls back to line input", "err", err)
		return t.askFallback(m)
	}
	defer release()

	r := &region{t: t}
	defer r.rewind()
	for {
		r.draw(m.lines(t.Width()), m.height())
		key, ok := t.next()
		if !ok {
			return Exit
		}
		if idx, done := m.handle(key); done {
			return idx
		}
	}
}

// menu is the state of one Ask call. options includes the appended
// Back/Exit entry as its last element.
type menu struct {
	question string
	options  []Option
	selected int
	maxHelp  int
}

func newMenu(question string, options []Option, exit bool) *menu {
	last := "Back"
	if exit {
		last = "Exit"
	}
	all := make([]Option, 0, len(options)+1)
	all = append(all, options...)
	all = append(all, Option{Label: last})

	m := &menu{question: question, options: all}
	for _, o := range all {
		if n := len(splitLines(o.Help)); n > m.maxHelp {
			m.maxHelp = n
		}
	}
	return m
}

func (m *menu) exitIndex() int {
	return len(m.options) - 1
}

func (m *menu) result(i int) int {
	if i == m.exitIndex() {
		return Exit
	}
	return i
}

// handle applies one key. done is true once the menu has a result.
func (m *menu) handle(key Key) (int, bool) {
	switch key.Kind {
	case KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case KeyDown:
		if m.selected < len(m.options)-1 {
			m.selected++
		}
	case KeyEnter:
		return m.result(m.selected), true
	case KeyBackspace, KeyDelete, KeyEscape:
		return Exit, true
	case KeyChar:
		if n, ok := key.IsDigit(); ok && n >= 1 && n <= len(m.options) {
			m.selected = n - 1
			return m.result(m.selected), true
		}
	}
	return 0, false
}

// height is the row count of every frame: question, options, hint and the
// help area sized for the longest help text of any option.
func (m *menu) height() int {
	return 1 + len(m.options) + 1 + m.maxHelp
}

func (m *menu) lines(width int) []string {
	avail := width - 1
	labels := make([]string, len(m.options))
	for i, o := range m.options {
		labels[i] = o.Label
	}
	numW := digits(len(m.options))
	fixed := rowIndent + numW + 2
	labelW := longest(labels)
	if labelW > avail-fixed {
		labelW = avail - fixed
	}
	descW := avail - fixed - labelW - 2

	lines := make([]string, 0, m.height())
	lines = append(lines, "  "+terminal.Style(truncate(m.question, avail-2), terminal.Bold))
	for i, o := range m.options {
		sel := i == m.selected
		label := pad(o.Label, labelW)
		if sel {
			label = terminal.Style(label, terminal.Bold)
		}
		row := rowPrefix(sel) + fmt.Sprintf("%*d. ", numW, i+1) + label
		if o.Description != "" && descW > 0 {
			row += "  " + terminal.Style(truncate(o.Description, descW), terminal.Dim)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "  "+terminal.Style(truncate(menuHint, avail-2), terminal.Dim))
	lines = append(lines, helpArea(m.options[m.selected].Help, m.maxHelp, avail)...)
	return lines
}

// helpArea returns exactly rows lines of help text, padded with blanks.
func helpArea(help string, rows, avail int) []string {
	out := make([]string, rows)
	for i, l := range splitLines(help) {
		if i >= rows {
			break
		}
		out[i] = "  " + terminal.Style(truncate(l, avail-2), terminal.Dim)
	}
	return out
}
