// Package cli wires the cobra command tree for non-interactive use.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/afuentes/planear/internal/config"
	"github.com/afuentes/planear/internal/tui"
	"github.com/afuentes/planear/internal/version"
)

// cfg is the resolved configuration, populated by setup before any
// command runs.
var cfg *config.Config

var (
	flagDebug bool
	flagPlain bool
)

var rootCmd = &cobra.Command{
	Use:               "planear",
	Short:             "Terminal client for the multi-agent project planner",
	Long:              `Planear submits a project description to the planning service, follows the agent pipeline as it streams progress, and renders the finished plan as a report and an ordered task diagram.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "planning service base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "disable colored output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(configCmd)
}

// setup resolves configuration and logging before a command runs. Flags
// take precedence over environment and config file values.
func setup(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlag("server.url", cmd.Flags().Lookup("server")); err != nil {
		return err
	}

	var err error
	cfg, err = config.Init()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if flagPlain || !cfg.UI.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return setupLogging(os.Stderr)
}

// setupLogging points logrus at the given writer with the configured
// level. --debug wins over the configured level.
func setupLogging(w io.Writer) error {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	if flagDebug {
		level = logrus.DebugLevel
	}

	logrus.SetLevel(level)
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// RunTUI loads configuration and starts the interactive client. Log
// output goes to the configured file (or nowhere): the terminal belongs
// to the UI.
func RunTUI() error {
	var err error
	cfg, err = config.Init()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logWriter := io.Discard
	if cfg.Logging.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logWriter = f
	}
	if err := setupLogging(logWriter); err != nil {
		return err
	}

	return tui.Run(cfg)
}
