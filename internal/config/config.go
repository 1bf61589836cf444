package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfig overrides the config file location.
const EnvConfig = "NANOPROMPT_CONFIG"

// Config holds the CLI configuration.
type Config struct {
	// Width fixes the terminal width; 0 detects it.
	Width int `yaml:"width"`

	// LogFile receives debug logs. Empty disables logging.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Book is the default prompt book path.
	Book string `yaml:"book"`

	// Color enables styled output; nil means on unless NO_COLOR is set.
	Color *bool `yaml:"color"`

	path string
}

// DefaultPath returns $NANOPROMPT_CONFIG or ~/.nanoprompt/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nanoprompt", "config.yaml"), nil
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Width < 0 {
		return nil, fmt.Errorf("invalid width %d in %s", cfg.Width, path)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Path is the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// ColorEnabled resolves the color setting against NO_COLOR.
func (c *Config) ColorEnabled() bool {
	if c.Color != nil {
		return *c.Color
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return !noColor
}

// Level returns the configured log level, info when unset.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
