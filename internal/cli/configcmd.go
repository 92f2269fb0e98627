package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afuentes/planear/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		source := config.File()
		if _, err := os.Stat(source); err != nil {
			source += " (not present, using defaults)"
		}

		fmt.Fprintf(out, "Config file:  %s\n", source)
		fmt.Fprintf(out, "Server URL:   %s\n", cfg.Server.URL)
		fmt.Fprintf(out, "Log level:    %s\n", cfg.Logging.Level)
		if cfg.Logging.File != "" {
			fmt.Fprintf(out, "Log file:     %s\n", cfg.Logging.File)
		}
		fmt.Fprintf(out, "Color output: %t\n", cfg.UI.Color)
		return nil
	},
}
