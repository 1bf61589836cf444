package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Width)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, path, cfg.Path())
}

func TestLoadParsesFields(t *testing.T) {
	path := writeFile(t, "config.yaml", `
width: 100
log_file: /tmp/np.log
log_level: debug
book: ./book.yaml
color: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, "/tmp/np.log", cfg.LogFile)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "./book.yaml", cfg.Book)
	assert.False(t, cfg.ColorEnabled())
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load(writeFile(t, "a.yaml", "width: -1\n"))
	assert.ErrorContains(t, err, "invalid width")

	_, err = Load(writeFile(t, "b.yaml", "log_level: loud\n"))
	assert.ErrorContains(t, err, "unknown log level")

	_, err = Load(writeFile(t, "c.yaml", "width: [\n"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestDefaultPathHonorsEnv(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/np.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/np.yaml", p)
}

func TestColorEnabledFallsBackToNoColor(t *testing.T) {
	cfg := &Config{}
	t.Setenv("NO_COLOR", "1")
	assert.False(t, cfg.ColorEnabled())
}
