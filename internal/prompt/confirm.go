package prompt

import (
	"strings"

	"github.com/moasq/nanoprompt/internal/terminal"
)

// AskConfirm asks a yes/no question on the default terminal.
func AskConfirm(question string, def bool) bool {
	return Default().AskConfirm(question, def)
}

// AskConfirm asks a yes/no question. Enter takes def; Escape and Backspace
// answer no.
func (t *Terminal) AskConfirm(question string, def bool) bool {
	if !t.interactive {
		return t.confirmFallback(question, def)
	}
	release, err := t.acquire(true)
	if err != nil {
		return t.confirmFallback(question, def)
	}
	defer release()

	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	line := "  " + terminal.Style(question, terminal.Bold) + " " + terminal.Style("["+hint+"]", terminal.Dim)
	r := &region{t: t}
	defer r.rewind()
	r.draw([]string{line}, 1)
	for {
		key, ok := t.next()
		if !ok {
			return false
		}
		switch key.Kind {
		case KeyEnter:
			return def
		case KeyEscape, KeyBackspace:
			return false
		case KeyChar:
			switch strings.ToLower(key.Text) {
			case "y":
				return true
			case "n":
				return false
			}
		}
	}
}
