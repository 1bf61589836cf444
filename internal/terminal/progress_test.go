package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestProgressPlainPrintsSteps(t *testing.T) {
	withColor(t, false)
	buf := captureOutput(t)

	p := NewProgress("Building", 2, 80, false)
	p.Start()
	p.Step("Compiling")
	p.Step("Linking")
	p.StopWithSuccess("Done")

	out := buf.String()
	if !strings.Contains(out, "  • Compiling\n  • Linking\n") {
		t.Fatalf("expected one line per step, got %q", out)
	}
	if !strings.HasSuffix(out, "✓ Done\n") {
		t.Fatalf("expected success line last, got %q", out)
	}
	if p.completed != 2 {
		t.Fatalf("expected 2 completed steps, got %d", p.completed)
	}
}

func TestProgressKeepsRecentActivities(t *testing.T) {
	withColor(t, false)
	captureOutput(t)

	p := NewProgress("Working", 0, 80, false)
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		p.Step(s)
	}
	if len(p.activities) != maxActivities {
		t.Fatalf("expected %d activities, got %d", maxActivities, len(p.activities))
	}
	if p.activities[0].text != "c" {
		t.Fatalf("expected oldest kept activity c, got %q", p.activities[0].text)
	}
}

func TestProgressInteractiveRedrawsFixedArea(t *testing.T) {
	withColor(t, false)
	buf := captureOutput(t)

	p := NewProgress("Building", 1, 80, true)
	p.Step("Compiling")
	p.render(0)
	p.render(1)

	out := buf.String()
	if got := strings.Count(out, "\r\033[K"); got != 2*progressRows {
		t.Fatalf("expected %d cleared rows, got %d", 2*progressRows, got)
	}
	if !strings.Contains(out, "\033[5A") {
		t.Fatalf("expected cursor to move up over the area, got %q", out)
	}
	if !strings.Contains(out, "0/1") {
		t.Fatalf("expected step counter, got %q", out)
	}
}

func TestProgressStopIsIdempotent(t *testing.T) {
	withColor(t, false)
	captureOutput(t)

	p := NewProgress("Building", 1, 80, true)
	p.Start()
	p.Step("Compiling")
	p.Stop()
	p.Stop()
}

func TestFormatElapsed(t *testing.T) {
	tests := map[time.Duration]string{
		5 * time.Second:  "5s",
		65 * time.Second: "1m05s",
		0:                "0s",
	}
	for d, want := range tests {
		if got := formatElapsed(d); got != want {
			t.Errorf("formatElapsed(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	withColor(t, false)
	if got := progressBar(1, 2); got != "["+strings.Repeat("█", 8)+strings.Repeat("░", 8)+"]" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := progressBar(3, 0); got != "" {
		t.Fatalf("expected empty bar for unknown total, got %q", got)
	}
}

func TestProgressNarrowTerminalKeepsRowsOnOneLine(t *testing.T) {
	withColor(t, true)
	buf := captureOutput(t)

	p := NewProgress("Building a rather long project name", 3, 20, true)
	p.Step("Resolving every package in the workspace")
	p.render(0)

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(rows) != progressRows {
		t.Fatalf("expected %d rows, got %d", progressRows, len(rows))
	}
	for _, row := range rows {
		if w := ansi.StringWidth(row); w > 19 {
			t.Fatalf("row %q is %d columns wide, want at most 19", row, w)
		}
	}
}

func TestFitRowIgnoresEscapeCodes(t *testing.T) {
	styled := Green + "short" + Reset
	if got := fitRow(styled, 20); got != styled {
		t.Fatalf("expected styled row unchanged, got %q", got)
	}
	if got := fitRow("abcdefghij", 6); ansi.StringWidth(got) != 5 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected 5-column cut with ellipsis, got %q", got)
	}
}
