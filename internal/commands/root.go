package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/moasq/nanoprompt/internal/config"
	"github.com/moasq/nanoprompt/internal/prompt"
	"github.com/moasq/nanoprompt/internal/terminal"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	logFile    string
	book       string
	width      int
	debug      bool

	cfg      *config.Config
	term     *prompt.Terminal
	logger   *slog.Logger
	closeLog func() error
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "nanoprompt",
		Short:         "Keyboard-driven terminal prompts",
		Long:          "nanoprompt runs menus, dashboards, line editors and multi-select grids described in a YAML prompt book.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ~/.nanoprompt/config.yaml)")
	flags.StringVar(&a.book, "book", "", "prompt book YAML file (default: built-in demo)")
	flags.StringVar(&a.logFile, "log-file", "", "write debug logs to this file")
	flags.IntVar(&a.width, "width", 0, "terminal width override")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newMenuCmd(a))
	rootCmd.AddCommand(newDashboardCmd(a))
	rootCmd.AddCommand(newEditCmd(a))
	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newSelectCmd(a))
	rootCmd.AddCommand(newConfirmCmd(a))
	rootCmd.AddCommand(newKeysCmd(a))
	rootCmd.AddCommand(newDemoCmd(a))
	return rootCmd
}

// setup loads the config, applies flag overrides and builds the terminal.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.width > 0 {
		cfg.Width = a.width
	}
	if a.book != "" {
		cfg.Book = a.book
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	if a.debug {
		cfg.LogLevel = "debug"
		if cfg.LogFile == "" {
			cfg.LogFile = filepath.Join(os.TempDir(), "nanoprompt.log")
		}
	}
	a.cfg = cfg

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeLog

	terminal.SetColor(cfg.ColorEnabled())
	terminal.Output = cmd.OutOrStdout()
	a.term = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		prompt.WithWidth(cfg.Width),
		prompt.WithLogger(logger),
	)
	logger.Debug("started", "version", Version, "config", cfg.Path(), "interactive", a.term.Interactive())
	return nil
}

func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}

// newLogger returns a text logger writing to cfg.LogFile, or a discarding
// logger when no file is set.
func newLogger(cfg *config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLoggerTo(f, cfg.Level()), f.Close, nil
}

func newLoggerTo(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
