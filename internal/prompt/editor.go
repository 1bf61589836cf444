package prompt

import (
	"strings"

	"github.com/moasq/nanoprompt/internal/terminal"
)

// CompletionResult is what a Completer offers for the text before the cursor.
type CompletionResult struct {
	// Matches are the candidate names, in display order.
	Matches []string
	// Completed replaces the text before the cursor: the input extended by
	// the longest common prefix of Matches.
	Completed string
	// Prefix is the fixed lead-in (such as a directory) that precedes every
	// match in the buffer.
	Prefix string
}

// Completer returns candidates for input, or nil when none are available.
type Completer func(input string) *CompletionResult

type editorState int

const (
	// stateTyping edits the buffer; no grid is shown.
	stateTyping editorState = iota
	// stateCompleting shows the match grid without a highlighted entry.
	stateCompleting
	// stateSelecting highlights a grid entry and mirrors it in the buffer.
	stateSelecting
)

func (s editorState) String() string {
	switch s {
	case stateCompleting:
		return "completing"
	case stateSelecting:
		return "selecting"
	default:
		return "typing"
	}
}

type editResult int

const (
	editContinue editResult = iota
	editSubmit
	editCancel
)

// editor is the state of one ReadLine call.
type editor struct {
	prompt   string
	buf      []rune
	cursor   int
	complete Completer
	width    int

	state       editorState
	matches     []string
	prefix      string
	selectIndex int
	savedBuf    []rune
	savedCursor int
}

func newEditor(prompt, initial string, complete Completer) *editor {
	buf := []rune(initial)
	return &editor{
		prompt:   prompt,
		buf:      buf,
		cursor:   len(buf),
		complete: complete,
		width:    defaultWidth,
	}
}

func (e *editor) String() string {
	return string(e.buf)
}

// handle applies one key using the transition function of the current state.
func (e *editor) handle(key Key) editResult {
	switch e.state {
	case stateSelecting:
		return e.selecting(key)
	case stateCompleting:
		return e.completing(key)
	default:
		return e.typing(key)
	}
}

func (e *editor) typing(key Key) editResult {
	switch key.Kind {
	case KeyChar:
		e.insert([]rune(key.Text))
	case KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
	case KeyRight:
		if e.cursor < len(e.buf) {
			e.cursor++
		}
	case KeyHome:
		e.cursor = 0
	case KeyEnd:
		e.cursor = len(e.buf)
	case KeyBackspace:
		if e.cursor > 0 {
			e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
			e.cursor--
		}
	case KeyDelete:
		e.deleteForward()
	case KeyCtrlD:
		if len(e.buf) == 0 {
			return editCancel
		}
		e.deleteForward()
	case KeyCtrlU:
		e.buf = append([]rune{}, e.buf[e.cursor:]...)
		e.cursor = 0
	case KeyTab:
		e.tab()
	case KeyEnter:
		return editSubmit
	case KeyEscape:
		return editCancel
	}
	return editContinue
}

// completing: the grid is visible but nothing is highlighted yet.
func (e *editor) completing(key Key) editResult {
	switch key.Kind {
	case KeyTab:
		e.enterSelect(0)
	case KeyShiftTab:
		e.enterSelect(len(e.matches) - 1)
	case KeyEscape:
		e.dismiss()
	default:
		e.dismiss()
		return e.typing(key)
	}
	return editContinue
}

func (e *editor) selecting(key Key) editResult {
	g := e.grid()
	switch key.Kind {
	case KeyTab:
		e.pick(g.move(e.selectIndex, KeyRight))
	case KeyShiftTab:
		e.pick(g.move(e.selectIndex, KeyLeft))
	case KeyLeft, KeyRight, KeyUp, KeyDown:
		e.pick(g.move(e.selectIndex, key.Kind))
	case KeyEscape:
		e.buf = append([]rune{}, e.savedBuf...)
		e.cursor = e.savedCursor
		e.state = stateCompleting
	case KeyEnter:
		e.dismiss()
		return editSubmit
	default:
		e.dismiss()
		return e.typing(key)
	}
	return editContinue
}

func (e *editor) insert(text []rune) {
	if len(text) == 0 {
		return
	}
	buf := make([]rune, 0, len(e.buf)+len(text))
	buf = append(buf, e.buf[:e.cursor]...)
	buf = append(buf, text...)
	buf = append(buf, e.buf[e.cursor:]...)
	e.buf = buf
	e.cursor += len(text)
}

func (e *editor) deleteForward() {
	if e.cursor < len(e.buf) {
		e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	}
}

// splice replaces the text before the cursor with before.
func (e *editor) splice(before string, after []rune) {
	head := []rune(before)
	buf := make([]rune, 0, len(head)+len(after))
	buf = append(buf, head...)
	buf = append(buf, after...)
	e.buf = buf
	e.cursor = len(head)
}

// tab runs the completer on the text before the cursor. A single match is
// applied directly; several matches apply their common prefix and show the
// grid.
func (e *editor) tab() {
	if e.complete == nil {
		return
	}
	res := e.complete(string(e.buf[:e.cursor]))
	if res == nil || len(res.Matches) == 0 {
		return
	}
	after := append([]rune{}, e.buf[e.cursor:]...)
	if len(res.Matches) == 1 {
		e.splice(res.Prefix+res.Matches[0], after)
		return
	}
	e.splice(res.Completed, after)
	e.matches = res.Matches
	e.prefix = res.Prefix
	e.savedBuf = append([]rune{}, e.buf...)
	e.savedCursor = e.cursor
	e.state = stateCompleting
}

func (e *editor) enterSelect(i int) {
	e.state = stateSelecting
	e.pick(i)
}

// pick highlights match i and writes it into the buffer in place of the
// completed text, keeping whatever followed the cursor.
func (e *editor) pick(i int) {
	e.selectIndex = i
	after := e.savedBuf[e.savedCursor:]
	e.splice(e.prefix+e.matches[i], append([]rune{}, after...))
}

// dismiss hides the grid and returns to typing, keeping the buffer.
func (e *editor) dismiss() {
	e.state = stateTyping
	e.matches = nil
	e.prefix = ""
	e.selectIndex = 0
	e.savedBuf = nil
	e.savedCursor = 0
}

func (e *editor) grid() grid {
	return newGrid(len(e.matches), longest(e.matches), e.width)
}

// view returns the visible part of the buffer and the cursor column. The
// input scrolls horizontally so it always fits on one row.
func (e *editor) view() (string, int) {
	promptW := textWidth(e.prompt)
	avail := e.width - promptW - 1
	if avail < 1 {
		avail = 1
	}
	start := 0
	if e.cursor > avail-1 {
		start = e.cursor - (avail - 1)
	}
	end := start + avail
	if end > len(e.buf) {
		end = len(e.buf)
	}
	visible := e.buf[start:end]
	col := promptW + textWidth(string(e.buf[start:e.cursor]))
	return string(visible), col
}

// lines returns the input row and, while completing, the grid below it.
func (e *editor) lines() ([]string, int) {
	text, col := e.view()
	lines := []string{terminal.Style(e.prompt, terminal.Bold) + text}
	if e.state == stateTyping {
		return lines, col
	}
	g := e.grid()
	w := g.contentWidth(e.width)
	selected := -1
	if e.state == stateSelecting {
		selected = e.selectIndex
	}
	cell := func(i int) string {
		name := pad(e.matches[i], w)
		switch {
		case i == selected:
			return terminal.Style(name, terminal.Reverse)
		case strings.HasSuffix(e.matches[i], "/"):
			return terminal.Style(name, terminal.Blue)
		default:
			return name
		}
	}
	return append(lines, g.render(cell, selected)...), col
}

// ReadLine reads one line on the default terminal.
func ReadLine(prompt string, complete Completer) (string, bool) {
	return Default().ReadLine(prompt, complete)
}

// ReadLine edits a single line after prompt. complete may be nil. ok is
// false when the user cancels with Escape or Ctrl+D on an empty line, or
// input ends.
func (t *Terminal) ReadLine(prompt string, complete Completer) (string, bool) {
	return t.editLine(prompt, "", complete)
}

func (t *Terminal) editLine(prompt, initial string, complete Completer) (string, bool) {
	if !t.interactive {
		return t.readLineFallback(prompt, initial)
	}
	release, err := t.acquire(false)
	if err != nil {
		t.logger.Debug("line editor falls back to line input", "err", err)
		return t.readLineFallback(prompt, initial)
	}
	defer release()

	e := newEditor(prompt, initial, complete)
	r := &region{t: t}
	for {
		e.width = t.Width()
		lines, col := e.lines()
		r.drawAt(lines, 0, col)

		key, ok := t.next()
		if !ok {
			r.rewind()
			return "", false
		}
		before := e.state
		res := e.handle(key)
		if e.state != before {
			t.logger.Debug("editor state", "from", before.String(), "to", e.state.String())
		}
		switch res {
		case editSubmit:
			e.dismiss()
			lines, col := e.lines()
			r.drawAt(lines, 0, col)
			t.write("\r\n")
			return e.String(), true
		case editCancel:
			r.rewind()
			return "", false
		}
	}
}

// AskValue asks for a free-form value on the default terminal.
func AskValue(label, current string) string {
	return Default().AskValue(label, current)
}

// AskValue edits current under label. Cancelling keeps current.
func (t *Terminal) AskValue(label, current string) string {
	v, ok := t.editLine(label+": ", current, nil)
	if !ok {
		return current
	}
	return v
}

// AskPath asks for a path on the default terminal.
func AskPath(label, current string, exts ...string) string {
	return Default().AskPath(label, current, exts...)
}

// AskPath edits current under label with file completion limited to exts
// (directories are always offered). Cancelling keeps current.
func (t *Terminal) AskPath(label, current string, exts ...string) string {
	v, ok := t.editLine(label+": ", current, PathCompleter(exts...))
	if !ok {
		return current
	}
	return v
}
