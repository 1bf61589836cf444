package prompt

import (
	"fmt"
	"strings"

	"github.com/moasq/nanoprompt/internal/terminal"
)

// Selection is the set of chosen items. AskMultiSelect mutates the caller's
// map in place, so the caller sees every toggle as soon as it happens.
type Selection map[string]bool

// Has reports whether item is selected.
func (s Selection) Has(item string) bool {
	return s[item]
}

// toggle flips item and returns its new membership.
func (s Selection) toggle(item string) bool {
	if s[item] {
		delete(s, item)
		return false
	}
	s[item] = true
	return true
}

// ChangeFunc is called after every membership change.
type ChangeFunc func(item string, selected bool)

type filterMode int

const (
	modeTyping filterMode = iota
	modeSelecting
)

func (m filterMode) String() string {
	if m == modeSelecting {
		return "selecting"
	}
	return "typing"
}

const (
	typingHint    = "type to filter · ↓/enter pick · a all · esc done"
	selectingHint = "space toggle · a all · ←↑↓→ move · esc filter"
	filterLabel   = "Filter: "
)

// AskMultiSelect runs the multi-select grid on the default terminal.
func AskMultiSelect(question string, items []string, selected Selection, onChange ChangeFunc) {
	Default().AskMultiSelect(question, items, selected, onChange)
}

// AskMultiSelect lets the user toggle items in selected, which must be
// non-nil. It returns at once when there are no items, selected is nil or the
// terminal is not interactive. onChange may be nil; it must not start another
// prompt.
func (t *Terminal) AskMultiSelect(question string, items []string, selected Selection, onChange ChangeFunc) {
	if selected == nil {
		t.logger.Debug("multi-select needs a non-nil selection")
		return
	}
	if len(items) == 0 || !t.interactive {
		return
	}
	release, err := t.acquire(true)
	if err != nil {
		t.logger.Debug("multi-select unavailable", "err", err)
		return
	}
	defer release()

	ms := newMultiSelect(question, items, selected, onChange)
	r := &region{t: t}
	defer r.rewind()
	for {
		ms.width = t.Width()
		r.draw(ms.lines(), ms.height())
		key, ok := t.next()
		if !ok {
			return
		}
		before := ms.mode
		done := ms.handle(key)
		if ms.mode != before {
			t.logger.Debug("multi-select mode", "from", before.String(), "to", ms.mode.String())
		}
		if done {
			return
		}
	}
}

type multiSelect struct {
	question string
	items    []string
	selected Selection
	onChange ChangeFunc
	width    int

	filter       []rune
	filterCursor int
	mode         filterMode
	selectIndex  int
	filtered     []string
}

func newMultiSelect(question string, items []string, selected Selection, onChange ChangeFunc) *multiSelect {
	ms := &multiSelect{
		question: question,
		items:    items,
		selected: selected,
		onChange: onChange,
		width:    defaultWidth,
	}
	ms.refilter()
	return ms
}

// filterItems keeps items containing filter, ignoring case. An empty filter
// keeps everything.
func filterItems(items []string, filter string) []string {
	if filter == "" {
		return items
	}
	needle := strings.ToLower(filter)
	var out []string
	for _, it := range items {
		if strings.Contains(strings.ToLower(it), needle) {
			out = append(out, it)
		}
	}
	return out
}

func (ms *multiSelect) refilter() {
	ms.filtered = filterItems(ms.items, string(ms.filter))
	ms.selectIndex = 0
}

// handle applies one key and reports whether the prompt is finished.
func (ms *multiSelect) handle(key Key) bool {
	if ms.mode == modeSelecting {
		return ms.selecting(key)
	}
	return ms.typing(key)
}

func (ms *multiSelect) typing(key Key) bool {
	switch key.Kind {
	case KeyChar:
		if len(ms.filter) == 0 && (key.Text == "a" || key.Text == "A") {
			ms.toggleAll(ms.items)
			return false
		}
		text := []rune(key.Text)
		f := make([]rune, 0, len(ms.filter)+len(text))
		f = append(f, ms.filter[:ms.filterCursor]...)
		f = append(f, text...)
		f = append(f, ms.filter[ms.filterCursor:]...)
		ms.filter = f
		ms.filterCursor += len(text)
		ms.refilter()
	case KeyBackspace:
		if len(ms.filter) == 0 {
			return true
		}
		if ms.filterCursor > 0 {
			ms.filter = append(ms.filter[:ms.filterCursor-1], ms.filter[ms.filterCursor:]...)
			ms.filterCursor--
			ms.refilter()
		}
	case KeyDelete:
		if ms.filterCursor < len(ms.filter) {
			ms.filter = append(ms.filter[:ms.filterCursor], ms.filter[ms.filterCursor+1:]...)
			ms.refilter()
		}
	case KeyCtrlU:
		ms.filter = append([]rune{}, ms.filter[ms.filterCursor:]...)
		ms.filterCursor = 0
		ms.refilter()
	case KeyHome:
		ms.filterCursor = 0
	case KeyEnd:
		ms.filterCursor = len(ms.filter)
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyEnter, KeyTab:
		if len(ms.filtered) > 0 {
			ms.mode = modeSelecting
			ms.selectIndex = 0
		}
	case KeyEscape:
		if len(ms.filter) == 0 {
			return true
		}
		ms.filter = nil
		ms.filterCursor = 0
		ms.refilter()
	case KeyCtrlD:
		return true
	}
	return false
}

func (ms *multiSelect) selecting(key Key) bool {
	g := ms.grid()
	switch key.Kind {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		ms.selectIndex = g.move(ms.selectIndex, key.Kind)
	case KeyShiftTab:
		ms.selectIndex = g.move(ms.selectIndex, KeyLeft)
	case KeyEnter:
		ms.toggle(ms.filtered[ms.selectIndex])
	case KeyTab, KeyEscape:
		ms.mode = modeTyping
	case KeyChar:
		switch key.Text {
		case " ":
			ms.toggle(ms.filtered[ms.selectIndex])
		case "a", "A":
			ms.toggleAll(ms.filtered)
		default:
			ms.mode = modeTyping
			return ms.typing(key)
		}
	default:
		ms.mode = modeTyping
		return ms.typing(key)
	}
	return false
}

func (ms *multiSelect) toggle(item string) {
	on := ms.selected.toggle(item)
	if ms.onChange != nil {
		ms.onChange(item, on)
	}
}

// toggleAll selects every item of list, or clears them all when every one
// is already selected.
func (ms *multiSelect) toggleAll(list []string) {
	if len(list) == 0 {
		return
	}
	all := true
	for _, it := range list {
		if !ms.selected[it] {
			all = false
			break
		}
	}
	for _, it := range list {
		if ms.selected[it] == !all {
			continue
		}
		ms.toggle(it)
	}
}

// cellWidth is the widest "[x] label" cell for list.
func cellWidth(list []string) int {
	return longest(list) + 4
}

func (ms *multiSelect) grid() grid {
	return newGrid(len(ms.filtered), cellWidth(ms.filtered), ms.width)
}

// gridRows is the space reserved for the grid: the height of the unfiltered
// grid, which no filtered subset can exceed.
func (ms *multiSelect) gridRows() int {
	return newGrid(len(ms.items), cellWidth(ms.items), ms.width).height()
}

func (ms *multiSelect) height() int {
	return 2 + ms.gridRows() + 1
}

func (ms *multiSelect) lines() []string {
	avail := ms.width - 1
	lines := make([]string, 0, ms.height())
	lines = append(lines, "  "+terminal.Style(truncate(ms.question, avail-2), terminal.Bold))

	filter := string(ms.filter)
	if ms.mode == modeTyping {
		head := string(ms.filter[:ms.filterCursor])
		caret := " "
		tail := ""
		if ms.filterCursor < len(ms.filter) {
			caret = string(ms.filter[ms.filterCursor])
			tail = string(ms.filter[ms.filterCursor+1:])
		}
		filter = head + terminal.Style(caret, terminal.Reverse) + tail
	} else {
		filter = terminal.Style(filter, terminal.Dim)
	}
	lines = append(lines, "  "+terminal.Style(filterLabel, terminal.Dim)+filter)

	if len(ms.filtered) == 0 {
		lines = append(lines, "  "+terminal.Style("(no matches)", terminal.Dim))
	} else {
		g := ms.grid()
		w := g.contentWidth(ms.width) - 4
		selected := -1
		if ms.mode == modeSelecting {
			selected = ms.selectIndex
		}
		cell := func(i int) string {
			item := ms.filtered[i]
			box := "[ ]"
			if ms.selected[item] {
				box = terminal.Style("[x]", terminal.Green)
			}
			label := pad(item, w)
			if i == selected {
				label = terminal.Style(label, terminal.Reverse)
			}
			return box + " " + label
		}
		lines = append(lines, g.render(cell, selected)...)
	}
	for len(lines) < 2+ms.gridRows() {
		lines = append(lines, "")
	}

	hint := typingHint
	if ms.mode == modeSelecting {
		hint = selectingHint
	}
	count := fmt.Sprintf("%d/%d selected · ", ms.countSelected(), len(ms.items))
	lines = append(lines, "  "+terminal.Style(truncate(count+hint, avail-2), terminal.Dim))
	return lines
}

func (ms *multiSelect) countSelected() int {
	n := 0
	for _, it := range ms.items {
		if ms.selected[it] {
			n++
		}
	}
	return n
}
