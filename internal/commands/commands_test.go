package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moasq/nanoprompt/internal/config"
	"github.com/moasq/nanoprompt/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with piped input, so every prompt takes its
// line-based fallback.
func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("NO_COLOR", "1")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// after returns the output following the last occurrence of marker.
func after(out, marker string) string {
	i := strings.LastIndex(out, marker)
	if i < 0 {
		return ""
	}
	return out[i+len(marker):]
}

func TestMenuCommand(t *testing.T) {
	out, err := run(t, "2\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "What would you like to do?")
	assert.Contains(t, out, "  4. Exit")
	assert.Contains(t, out, "✓ Selected Test")
}

func TestMenuCommandBack(t *testing.T) {
	out, err := run(t, "b\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing selected.")
}

func TestMenuCommandRepromptsOnInvalidInput(t *testing.T) {
	out, err := run(t, "9\n1\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, `Invalid choice "9". Enter a number between 1 and 4.`)
	assert.Contains(t, out, "Selected Build")
}

func TestMenuCommandUnknownName(t *testing.T) {
	_, err := run(t, "", "menu", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `menu "nope" not found`)
}

func TestMenuCommandFromBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.yaml")
	book := "menus:\n  pick:\n    question: Pick a color\n    options:\n      - label: Red\n      - label: Blue\n"
	require.NoError(t, os.WriteFile(path, []byte(book), 0o644))

	out, err := run(t, "2\n", "--book", path, "menu", "pick")
	require.NoError(t, err)
	assert.Contains(t, out, "Pick a color")
	assert.Contains(t, out, "  3. Back")
	assert.Contains(t, out, "Selected Blue")
}

func TestDashboardCommandEditsItem(t *testing.T) {
	out, err := run(t, "1\nrenamed\n\n", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Project name: [demo] ")
	assert.Contains(t, out, "Project name set to renamed")

	final := after(out, "Settings")
	assert.Contains(t, final, strings.Repeat("─", 60))
	assert.Contains(t, final, "Project name: renamed")
	assert.Contains(t, final, "Model: sonnet")
}

func TestDashboardCommandReset(t *testing.T) {
	out, err := run(t, "1\nrenamed\nr\n\n", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Values reset.")
	assert.Contains(t, after(out, "Settings"), "Project name: demo")
}

func TestDashboardCommandSaveShowsValues(t *testing.T) {
	out, err := run(t, "s\n\n", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "model: sonnet")
	assert.Contains(t, out, "output: ./build")
}

func TestEditCommand(t *testing.T) {
	out, err := run(t, "bar\n", "edit", "Name", "--value", "foo")
	require.NoError(t, err)
	assert.Contains(t, out, "Name: [foo] ")
	assert.Contains(t, out, "  Value: bar\n")
}

func TestEditCommandKeepsValueOnEmptyInput(t *testing.T) {
	out, err := run(t, "\n", "edit", "--value", "foo")
	require.NoError(t, err)
	assert.Contains(t, out, "  Value: foo\n")
}

func TestPathCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir+"\n", "path", "--ext", ".json")
	require.NoError(t, err)
	assert.Contains(t, out, "  Path: "+dir+"\n")
}

func TestSelectCommandNonInteractiveKeepsSelection(t *testing.T) {
	out, err := run(t, "", "select")
	require.NoError(t, err)
	assert.Contains(t, out, "Multi-select needs an interactive terminal")
	assert.Contains(t, out, "Selected git, go")
}

func TestConfirmCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{"yes", "y\n", nil, "✓ yes"},
		{"no", "no\n", nil, "i no"},
		{"default no", "\n", nil, "i no"},
		{"default yes", "\n", []string{"--default"}, "✓ yes"},
		{"eof takes default", "", []string{"--default"}, "✓ yes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.input, append([]string{"confirm", "Ship it?"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, "Ship it? [")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestConfirmCommandReprompts(t *testing.T) {
	out, err := run(t, "maybe\ny\n", "confirm")
	require.NoError(t, err)
	assert.Contains(t, out, "Please answer y or n.")
	assert.Contains(t, out, "✓ yes")
}

func TestKeysCommandNeedsTerminal(t *testing.T) {
	_, err := run(t, "", "keys")
	assert.ErrorIs(t, err, prompt.ErrNotInteractive)
}

func TestDemoBuildThenExit(t *testing.T) {
	out, err := run(t, "1\ny\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "nanoprompt v"+Version)
	assert.Contains(t, out, "Build now? [Y/n]: ")
	assert.Contains(t, out, "  • Resolving packages\n  • Compiling\n  • Linking\n✓ Build finished.")
}

func TestDemoTestShowsTools(t *testing.T) {
	out, err := run(t, "2\n4\n", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "  Tools: git, go\n")
}

func TestDemoSettingsReturnsToMenu(t *testing.T) {
	out, err := run(t, "3\n\n4\n", "demo")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "What would you like to do?"))
}

func TestDemoEndsOnEOF(t *testing.T) {
	_, err := run(t, "")
	require.NoError(t, err)
}

func TestDebugLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	_, err := run(t, "1\n", "--debug", "--log-file", logPath, "menu")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=started")
	assert.Contains(t, string(data), "interactive=false")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: -3\n"), 0o644))

	_, err := run(t, "", "--config", path, "menu")
	require.Error(t, err)
}

func TestIsPathItem(t *testing.T) {
	assert.True(t, isPathItem(config.ItemSpec{Key: "output", Label: "Output directory"}))
	assert.True(t, isPathItem(config.ItemSpec{Key: "x", Label: "X", Value: "~/src"}))
	assert.True(t, isPathItem(config.ItemSpec{Key: "config", Label: "Config file"}))
	assert.False(t, isPathItem(config.ItemSpec{Key: "model", Label: "Model", Value: "sonnet"}))
}

func TestCloneDashboardIsIndependent(t *testing.T) {
	orig := config.DemoBook().Dashboards["settings"]
	clone := cloneDashboard(orig)
	require.True(t, clone.SetValue("name", "changed"))

	item, ok := orig.Item("name")
	require.True(t, ok)
	assert.Equal(t, "demo", item.Value)
}
