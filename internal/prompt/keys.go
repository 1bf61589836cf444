package prompt

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// KeyKind classifies a decoded key event.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyChar
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyShiftTab
	KeyCtrlC
	KeyCtrlD
	KeyCtrlU
)

var keyNames = map[KeyKind]string{
	KeyNone:      "none",
	KeyChar:      "char",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyShiftTab:  "shift-tab",
	KeyCtrlC:     "ctrl-c",
	KeyCtrlD:     "ctrl-d",
	KeyCtrlU:     "ctrl-u",
}

func (k KeyKind) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Key is one logical key event. Text is set only for KeyChar and may hold
// several runes when a paste arrives in a single read.
type Key struct {
	Kind KeyKind
	Text string
}

func (k Key) String() string {
	if k.Kind == KeyChar {
		return fmt.Sprintf("char(%q)", k.Text)
	}
	return k.Kind.String()
}

// Rune returns the first rune of a KeyChar event, or 0.
func (k Key) Rune() rune {
	if k.Kind != KeyChar || k.Text == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(k.Text)
	return r
}

// IsDigit reports whether the key is a single decimal digit and returns it.
func (k Key) IsDigit() (int, bool) {
	if k.Kind != KeyChar || len(k.Text) != 1 {
		return 0, false
	}
	c := k.Text[0]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// maxKeyRead is the largest chunk read for a single key token.
const maxKeyRead = 32

// escapeKeys maps complete escape sequences to key kinds. Both normal and
// application cursor-key encodings are accepted.
var escapeKeys = map[string]KeyKind{
	"\x1b[A":  KeyUp,
	"\x1bOA":  KeyUp,
	"\x1b[B":  KeyDown,
	"\x1bOB":  KeyDown,
	"\x1b[C":  KeyRight,
	"\x1bOC":  KeyRight,
	"\x1b[D":  KeyLeft,
	"\x1bOD":  KeyLeft,
	"\x1b[H":  KeyHome,
	"\x1b[1~": KeyHome,
	"\x1bOH":  KeyHome,
	"\x1b[F":  KeyEnd,
	"\x1b[4~": KeyEnd,
	"\x1bOF":  KeyEnd,
	"\x1b[3~": KeyDelete,
	"\x1b[Z":  KeyShiftTab,
}

// controlKeys maps single control bytes to key kinds.
var controlKeys = map[byte]KeyKind{
	0x01: KeyHome, // Ctrl+A
	0x03: KeyCtrlC,
	0x04: KeyCtrlD,
	0x05: KeyEnd, // Ctrl+E
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0a: KeyEnter,
	0x0d: KeyEnter,
	0x15: KeyCtrlU,
	0x1b: KeyEscape,
	0x7f: KeyBackspace,
}

// DecodeKey classifies one raw read as a single key token. The whole buffer
// is one token: a lone ESC is Escape, and an escape sequence split across two
// reads is not reassembled.
func DecodeKey(b []byte) Key {
	if len(b) == 0 {
		return Key{}
	}
	if len(b) == 1 {
		if kind, ok := controlKeys[b[0]]; ok {
			return Key{Kind: kind}
		}
		if b[0] >= 32 {
			return Key{Kind: KeyChar, Text: string(b)}
		}
		return Key{}
	}
	if b[0] == 0x1b {
		if kind, ok := escapeKeys[string(b)]; ok {
			return Key{Kind: kind}
		}
		return Key{}
	}
	if b[0] < 32 {
		return Key{}
	}
	text := printable(b)
	if text == "" {
		return Key{}
	}
	return Key{Kind: KeyChar, Text: text}
}

// printable keeps the valid, non-control runes of a multi-byte chunk.
func printable(b []byte) string {
	out := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		if r < 32 || r == 0x7f {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// readKey blocks for the next chunk of input and decodes it. Reads that
// decode to nothing are skipped. io.EOF is returned when input is exhausted.
func readKey(r io.Reader) (Key, error) {
	buf := make([]byte, maxKeyRead)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if key := DecodeKey(buf[:n]); key.Kind != KeyNone {
				return key, nil
			}
			continue
		}
		if err != nil {
			return Key{}, err
		}
	}
}
