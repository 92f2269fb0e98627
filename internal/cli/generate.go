package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afuentes/planear/internal/display"
	"github.com/afuentes/planear/internal/planner"
	"github.com/afuentes/planear/internal/render"
	"github.com/afuentes/planear/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate <project statement...>",
	Short: "Generate a project plan without the TUI",
	Long:  `Submit a project statement, follow agent progress on stderr, and print the finished plan (report and task diagram) to stdout.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	statement := strings.TrimSpace(strings.Join(args, " "))

	client := planner.New(cfg.Server.URL)
	state := session.Start(session.State{})

	events, err := client.GeneratePlan(cmd.Context(), statement)
	if err != nil {
		return errors.New(session.UserMessage(err))
	}

	// Live agent status on stderr; stdout stays clean for the plan.
	status := display.New(cmd.ErrOrStderr())
	status.Start()

	for event := range events {
		state = session.Reduce(state, event)
		if ind := state.Indicator; ind != nil {
			status.UpdateAgent(ind.Agent, ind.Message)
		}
	}

	status.Stop()
	state = session.Finish(state)

	if state.Phase == session.PhaseErrored {
		return errors.New(state.ErrMsg)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Report(state.Result))

	var tasks []planner.DependencyTask
	if state.Result != nil {
		tasks = state.Result.DependencyTasks
	}

	fmt.Fprintln(out, "Task Order")
	diagram, err := render.SafeDiagram(tasks)
	if err != nil {
		// The report above is still valid; only the diagram failed.
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", err)
		return nil
	}
	fmt.Fprintln(out, diagram)

	return nil
}
