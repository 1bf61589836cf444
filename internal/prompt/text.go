package prompt

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// textWidth is the display width of plain text.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}

// truncate shortens plain text to at most w columns, ending in an ellipsis
// when anything was cut.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, ellipsis)
}

// pad truncates s to w columns and fills the rest with spaces.
func pad(s string, w int) string {
	return runewidth.FillRight(truncate(s, w), w)
}

// fitLine cuts a styled line so it never reaches the last terminal column,
// which would make the terminal wrap and break the row count.
func fitLine(s string, width int) string {
	limit := width - 1
	if limit < 1 {
		limit = 1
	}
	if ansi.StringWidth(s) <= limit {
		return s
	}
	return ansi.Truncate(s, limit, ellipsis)
}

// splitLines splits multi-line text, dropping one trailing newline. Empty
// text has no lines.
func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func longest(labels []string) int {
	w := 0
	for _, l := range labels {
		if lw := textWidth(l); lw > w {
			w = lw
		}
	}
	return w
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
