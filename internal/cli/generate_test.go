package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/afuentes/planear/internal/config"
	"github.com/afuentes/planear/internal/planner"
	"github.com/afuentes/planear/internal/testutil"
)

// newTestCommand returns a bare command with buffered output, bypassing
// the root command's config and flag plumbing.
func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func pointAt(t *testing.T, url string) {
	t.Helper()
	prev := cfg
	cfg = config.Default()
	cfg.Server.URL = url
	t.Cleanup(func() { cfg = prev })
}

func TestRunGenerate_PrintsPlan(t *testing.T) {
	srv := testutil.StreamServer(t,
		testutil.Frame(t, planner.StatusEvent{Status: planner.StatusRunning, Agent: planner.AgentPlanner, Message: "Breaking down the project..."}),
		testutil.Frame(t, planner.StatusEvent{Status: planner.StatusCompleted, Data: &planner.PlanResult{
			FormattedOutput: planner.FormattedOutput{Markdown: "# Project Plan"},
			DependencyTasks: []planner.DependencyTask{
				{ID: "task_1", Name: "Design", Priority: "high", EstimatedDurationDays: 2, Category: "planning"},
				{ID: "task_2", Name: "Build", Priority: "medium", EstimatedDurationDays: 5, Category: "dev"},
			},
		}}),
	)
	pointAt(t, srv.URL)

	cmd, out, _ := newTestCommand()
	if err := runGenerate(cmd, []string{"build", "a", "mobile", "app"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "# Project Plan") {
		t.Errorf("expected the report on stdout:\n%s", got)
	}
	if !strings.Contains(got, "Task Order") {
		t.Errorf("expected the diagram heading on stdout:\n%s", got)
	}
	if !strings.Contains(got, "1. Design") || !strings.Contains(got, "2. Build") {
		t.Errorf("expected the task chain on stdout:\n%s", got)
	}
}

func TestRunGenerate_BackendError(t *testing.T) {
	srv := testutil.StreamServer(t,
		testutil.Frame(t, planner.StatusEvent{Status: planner.StatusRunning, Agent: planner.AgentPlanner, Message: "Breaking down the project..."}),
		testutil.Frame(t, planner.StatusEvent{Status: planner.StatusError, Message: "model quota exhausted"}),
	)
	pointAt(t, srv.URL)

	cmd, _, _ := newTestCommand()
	err := runGenerate(cmd, []string{"build", "a", "mobile", "app"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if err.Error() != "model quota exhausted" {
		t.Errorf("expected the backend message, got %q", err.Error())
	}
}

func TestRunGenerate_EmptyStatement(t *testing.T) {
	pointAt(t, "http://127.0.0.1:1")

	cmd, _, _ := newTestCommand()
	err := runGenerate(cmd, []string{"   "})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "project description") {
		t.Errorf("expected the validation message, got %q", err.Error())
	}
}

func TestRunGenerate_ServiceUnreachable(t *testing.T) {
	pointAt(t, "http://127.0.0.1:1")

	cmd, _, _ := newTestCommand()
	err := runGenerate(cmd, []string{"build", "a", "mobile", "app"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "Could not reach the planning service") {
		t.Errorf("expected the connectivity message, got %q", err.Error())
	}
}

func TestRunGenerate_RejectedRequest(t *testing.T) {
	srv := testutil.ErrorServer(t, 502)
	pointAt(t, srv.URL)

	cmd, _, _ := newTestCommand()
	err := runGenerate(cmd, []string{"build", "a", "mobile", "app"})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("expected the status code in the message, got %q", err.Error())
	}
}

func TestRunGenerate_CompletionWithoutTasks(t *testing.T) {
	srv := testutil.StreamServer(t,
		testutil.Frame(t, planner.StatusEvent{Status: planner.StatusCompleted, Data: &planner.PlanResult{
			FormattedOutput: planner.FormattedOutput{Markdown: "# Project Plan"},
		}}),
	)
	pointAt(t, srv.URL)

	cmd, out, _ := newTestCommand()
	if err := runGenerate(cmd, []string{"build", "a", "mobile", "app"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No tasks to display.") {
		t.Errorf("expected the empty-diagram placeholder:\n%s", out.String())
	}
}
