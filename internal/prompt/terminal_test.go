package prompt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtrlCRestoresOnEveryPrimitive(t *testing.T) {
	primitives := map[string]func(tt *testTerm){
		"ask": func(tt *testTerm) { tt.Ask("q", abOptions(), AskOpts{}) },
		"dashboard": func(tt *testTerm) {
			tt.AskDashboard("d", sampleSections(), sampleActions(), DashboardOpts{})
		},
		"readline":    func(tt *testTerm) { tt.ReadLine("> ", nil) },
		"multiselect": func(tt *testTerm) { tt.AskMultiSelect("m", []string{"a"}, Selection{}, nil) },
		"confirm":     func(tt *testTerm) { tt.AskConfirm("c", true) },
	}
	for name, run := range primitives {
		t.Run(name, func(t *testing.T) {
			tt := newTestTerm(down, ctrlC, enter)
			run(tt)
			assert.Equal(t, []int{exitInterrupted}, tt.exits)
			assert.Nil(t, tt.release)
		})
	}
}

func TestWatchKeys(t *testing.T) {
	tt := newTestTerm("a", up, "q", "b")
	var seen []Key
	err := tt.WatchKeys(func(k Key) bool {
		seen = append(seen, k)
		return k.Text != "q"
	})
	require.NoError(t, err)
	assert.Equal(t, []Key{{Kind: KeyChar, Text: "a"}, {Kind: KeyUp}, {Kind: KeyChar, Text: "q"}}, seen)

	ft := newFallbackTerm("")
	assert.ErrorIs(t, ft.WatchKeys(func(Key) bool { return true }), ErrNotInteractive)
}

func TestWidthDefaultsWithoutDevice(t *testing.T) {
	term := New(&bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, defaultWidth, term.Width())
	assert.False(t, term.Interactive())

	term = New(&bytes.Buffer{}, &bytes.Buffer{}, WithWidth(120))
	assert.Equal(t, 120, term.Width())
}

func TestDefaultIsReplaceable(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	tt := newTestTerm("2")
	SetDefault(tt.Terminal)
	assert.Equal(t, 1, Ask("q", abOptions(), AskOpts{}))
}
