package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

// Colors for terminal output.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Reverse = "\033[7m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Cyan    = "\033[36m"
)

var colorEnabled atomic.Bool

func init() {
	_, noColor := os.LookupEnv("NO_COLOR")
	colorEnabled.Store(!noColor)
}

// SetColor turns styling on or off for Style and the printers below.
func SetColor(on bool) {
	colorEnabled.Store(on)
}

// ColorEnabled reports whether Style emits escape codes.
func ColorEnabled() bool {
	return colorEnabled.Load()
}

// Style wraps s in the given codes followed by Reset. With color disabled it
// returns s unchanged.
func Style(s string, codes ...string) string {
	if s == "" || len(codes) == 0 || !colorEnabled.Load() {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// Output is where the printers write. Tests swap it.
var Output io.Writer = os.Stdout

// UI helper functions.

// Success prints a green success message.
func Success(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Style("✓", Bold, Green), msg)
}

// Error prints a red error message.
func Error(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Style("✗", Bold, Red), msg)
}

// Info prints a blue info message.
func Info(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Style("i", Bold, Blue), msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	fmt.Fprintf(Output, "%s %s\n", Style("!", Bold, Yellow), msg)
}

// Header prints a bold header.
func Header(msg string) {
	fmt.Fprintf(Output, "\n%s\n", Style(msg, Bold))
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	fmt.Fprintf(Output, "  %s %s\n", Style(label+":", Dim), value)
}

// Divider prints a horizontal line.
func Divider() {
	fmt.Fprintln(Output, Style(strings.Repeat("─", 60), Dim))
}

// Banner prints the welcome box with the given version.
func Banner(version string) {
	fmt.Fprintln(Output)
	fmt.Fprintf(Output, "  %s\n", Style("╭"+strings.Repeat("─", 35)+"╮", Dim))
	fmt.Fprintf(Output, "  %s  nanoprompt %s%s\n", Style("│", Dim), Style(fmt.Sprintf("%-22s", "v"+version), Bold), Style("│", Dim))
	fmt.Fprintf(Output, "  %s  Keyboard-driven terminal prompts %s\n", Style("│", Dim), Style("│", Dim))
	fmt.Fprintf(Output, "  %s\n", Style("╰"+strings.Repeat("─", 35)+"╯", Dim))
	fmt.Fprintln(Output)
}
