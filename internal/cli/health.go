package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afuentes/planear/internal/planner"
	"github.com/afuentes/planear/internal/session"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the planning service is reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client := planner.New(cfg.Server.URL)
		if err := client.Health(cmd.Context()); err != nil {
			return errors.New(session.UserMessage(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Planning service at %s is healthy\n", cfg.Server.URL)
		return nil
	},
}
