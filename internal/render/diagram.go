package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/afuentes/planear/internal/planner"
)

// NoTasksPlaceholder is shown when the plan carries no task sequence.
const NoTasksPlaceholder = "No tasks to display."

// connector joins consecutive task nodes in execution order.
const connector = "  ↓"

var (
	highColor    = lipgloss.Color("#AF5F5F") // red
	mediumColor  = lipgloss.Color("#D7AF5F") // amber
	lowColor     = lipgloss.Color("#87AF87") // green
	neutralColor = lipgloss.Color("#666666") // gray

	nodeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	captionStyle = lipgloss.NewStyle().
			Foreground(neutralColor)
)

// NodeColor maps a task priority to its display color. Anything outside
// the known set gets the neutral color.
func NodeColor(priority string) lipgloss.Color {
	switch priority {
	case planner.PriorityHigh:
		return highColor
	case planner.PriorityMedium:
		return mediumColor
	case planner.PriorityLow:
		return lowColor
	default:
		return neutralColor
	}
}

// Diagram renders the ordered task chain: one bordered node per task,
// numbered by position (not by task ID), colored by priority, with a
// connector between consecutive nodes. Order is taken from the slice as-is;
// the dependency graph inside the tasks is not consulted.
func Diagram(tasks []planner.DependencyTask) string {
	if len(tasks) == 0 {
		return NoTasksPlaceholder
	}

	var b strings.Builder
	for i, task := range tasks {
		b.WriteString(renderNode(i+1, task))
		b.WriteString("\n")
		if i < len(tasks)-1 {
			b.WriteString(connector)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SafeDiagram is the isolating boundary around diagram rendering: a panic
// in the renderer is recovered and returned as an error, so a bad plan can
// never take the rest of the output down with it.
func SafeDiagram(tasks []planner.DependencyTask) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("diagram rendering failed: %v", r)
		}
	}()
	return Diagram(tasks), nil
}

// renderNode renders one numbered task node. Package-level var so tests
// can substitute a failing renderer.
var renderNode = renderTaskNode

// renderTaskNode renders one numbered task node with its caption line.
func renderTaskNode(position int, task planner.DependencyTask) string {
	title := fmt.Sprintf("%d. %s", position, task.Name)

	caption := Days(task.EstimatedDurationDays)
	if task.Category != "" {
		caption += " · " + task.Category
	}

	content := title + "\n" + captionStyle.Render(caption)

	return nodeStyle.BorderForeground(NodeColor(task.Priority)).Render(content)
}
