// Package prompt implements keyboard-driven terminal prompts: a single-select
// menu, a sectioned dashboard, a line editor with tab completion and a
// filterable multi-select grid. Every primitive owns the terminal in raw mode
// for the duration of the call and falls back to numbered line input when
// stdin is not a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when raw mode cannot be entered.
var ErrNotInteractive = errors.New("terminal is not interactive")

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	clearLine  = "\033[2K"
	clearDown  = "\033[J"

	defaultWidth = 80

	// exitInterrupted is the process exit code after Ctrl+C.
	exitInterrupted = 130
)

// Terminal is the input/output pair the prompts run on. A Terminal must not
// be used by two prompts at once.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	inFd        int
	outFd       int
	interactive bool
	width       int
	exit        func(code int)
	logger      *slog.Logger

	lines   *bufio.Reader
	release func()
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithWidth fixes the terminal width instead of querying the device.
// Zero keeps detection.
func WithWidth(w int) TerminalOption {
	return func(t *Terminal) {
		t.width = w
	}
}

// WithInteractive forces raw key handling on or off.
func WithInteractive(on bool) TerminalOption {
	return func(t *Terminal) {
		t.interactive = on
	}
}

// WithExit replaces the function called after Ctrl+C restores the terminal.
func WithExit(fn func(code int)) TerminalOption {
	return func(t *Terminal) {
		t.exit = fn
	}
}

// WithLogger sets the debug logger. Logs never go to the terminal itself.
func WithLogger(l *slog.Logger) TerminalOption {
	return func(t *Terminal) {
		if l != nil {
			t.logger = l
		}
	}
}

type fdHolder interface {
	Fd() uintptr
}

// New returns a Terminal reading keys from in and drawing to out. When in is
// a terminal device the prompts run interactively.
func New(in io.Reader, out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		in:     in,
		out:    out,
		inFd:   -1,
		outFd:  -1,
		exit:   os.Exit,
		logger: slog.New(slog.DiscardHandler),
	}
	if f, ok := in.(fdHolder); ok {
		t.inFd = int(f.Fd())
		t.interactive = term.IsTerminal(t.inFd)
	}
	if f, ok := out.(fdHolder); ok {
		t.outFd = int(f.Fd())
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var (
	stdMu sync.Mutex
	std   *Terminal
)

// Default returns the Terminal on stdin/stdout used by the package-level
// prompt functions.
func Default() *Terminal {
	stdMu.Lock()
	defer stdMu.Unlock()
	if std == nil {
		std = New(os.Stdin, os.Stdout)
	}
	return std
}

// SetDefault replaces the Terminal used by the package-level functions.
func SetDefault(t *Terminal) {
	stdMu.Lock()
	std = t
	stdMu.Unlock()
}

// Interactive reports whether prompts read raw keys.
func (t *Terminal) Interactive() bool {
	return t.interactive
}

// Width returns the terminal width in columns, sampled on each call.
func (t *Terminal) Width() int {
	if t.width > 0 {
		return t.width
	}
	for _, fd := range []int{t.outFd, t.inFd} {
		if fd < 0 {
			continue
		}
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func (t *Terminal) write(s string) {
	io.WriteString(t.out, s)
}

func (t *Terminal) writef(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// acquire switches the input device to raw mode and returns the function
// that undoes it. release may be called any number of times; the Ctrl+C path
// calls it before the deferred call does.
func (t *Terminal) acquire(hide bool) (func(), error) {
	restoreMode := func() {}
	if t.inFd >= 0 && term.IsTerminal(t.inFd) {
		oldState, err := term.MakeRaw(t.inFd)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotInteractive, err)
		}
		restoreMode = func() {
			term.Restore(t.inFd, oldState)
		}
	}
	if hide {
		t.write(hideCursor)
	}
	t.logger.Debug("raw mode acquired", "hide_cursor", hide)

	var once sync.Once
	release := func() {
		once.Do(func() {
			if hide {
				t.write(showCursor)
			}
			restoreMode()
			t.release = nil
			t.logger.Debug("raw mode released")
		})
	}
	t.release = release
	return release, nil
}

// interrupt wipes everything below the cursor, restores the terminal and
// hands control to the exit hook.
func (t *Terminal) interrupt() {
	t.write("\r\n" + clearDown)
	if t.release != nil {
		t.release()
	}
	t.logger.Debug("interrupted")
	t.exit(exitInterrupted)
}

// next reads the next key. ok is false when input is exhausted or the user
// pressed Ctrl+C, in which case the terminal is already restored and the
// exit hook has run.
func (t *Terminal) next() (Key, bool) {
	key, err := readKey(t.in)
	if err != nil {
		t.logger.Debug("input closed", "err", err)
		return Key{}, false
	}
	t.logger.Debug("key", "kind", key.Kind.String())
	if key.Kind == KeyCtrlC {
		t.interrupt()
		return key, false
	}
	return key, true
}

// readLine reads one line in fallback mode. io.EOF is returned only when
// nothing was read.
func (t *Terminal) readLine() (string, error) {
	if t.lines == nil {
		t.lines = bufio.NewReader(t.in)
	}
	line, err := t.lines.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WatchKeys runs fn for every decoded key until fn returns false or input
// ends. Ctrl+C is handled like in every prompt.
func (t *Terminal) WatchKeys(fn func(Key) bool) error {
	if !t.interactive {
		return ErrNotInteractive
	}
	release, err := t.acquire(false)
	if err != nil {
		return err
	}
	defer release()
	for {
		key, ok := t.next()
		if !ok || !fn(key) {
			return nil
		}
	}
}
