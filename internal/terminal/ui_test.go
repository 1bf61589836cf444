package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Output
	Output = &buf
	t.Cleanup(func() { Output = prev })
	return &buf
}

func withColor(t *testing.T, on bool) {
	t.Helper()
	prev := ColorEnabled()
	SetColor(on)
	t.Cleanup(func() { SetColor(prev) })
}

func TestStyleWrapsWithReset(t *testing.T) {
	withColor(t, true)
	got := Style("hi", Bold, Cyan)
	if got != Bold+Cyan+"hi"+Reset {
		t.Fatalf("unexpected styled text %q", got)
	}
}

func TestStyleDisabledReturnsPlainText(t *testing.T) {
	withColor(t, false)
	if got := Style("hi", Bold); got != "hi" {
		t.Fatalf("expected plain text, got %q", got)
	}
}

func TestStyleEmptyStringStaysEmpty(t *testing.T) {
	withColor(t, true)
	if got := Style("", Bold); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestPrintersWriteOneLine(t *testing.T) {
	withColor(t, false)
	buf := captureOutput(t)

	Success("done")
	Error("failed")
	Detail("Path", "/tmp")

	want := "✓ done\n✗ failed\n  Path: /tmp\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestBannerContainsVersion(t *testing.T) {
	withColor(t, false)
	buf := captureOutput(t)
	Banner("1.2.3")
	if !strings.Contains(buf.String(), "v1.2.3") {
		t.Fatalf("banner missing version: %q", buf.String())
	}
}
