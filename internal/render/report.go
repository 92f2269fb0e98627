// Package render turns a finished plan into display text: a flattened
// report and an ordered task-chain diagram. Everything here is a pure
// function of its input; no I/O, no shared state.
package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/afuentes/planear/internal/planner"
)

// NoOutputPlaceholder is shown when there is no plan to report on.
const NoOutputPlaceholder = "No output available."

// Report renders the textual plan report. Sections (summary, markdown
// report, gantt source) are each optional and omitted entirely when the
// backend did not produce them.
func Report(result *planner.PlanResult) string {
	if result == nil {
		return NoOutputPlaceholder
	}

	var sections []string

	if summary := result.FormattedOutput.Summary; summary != nil {
		var b strings.Builder
		b.WriteString("Project Summary\n")
		fmt.Fprintf(&b, "  Total tasks: %d\n", summary.TotalTasks)
		fmt.Fprintf(&b, "  Estimated duration: %s\n", Days(summary.EstimatedDurationDays))
		sections = append(sections, b.String())
	}

	if md := result.FormattedOutput.Markdown; md != "" {
		sections = append(sections, strings.TrimRight(md, "\n")+"\n")
	}

	if gantt := result.FormattedOutput.MermaidGantt; gantt != "" {
		sections = append(sections, "```mermaid\n"+strings.TrimRight(gantt, "\n")+"\n```\n")
	}

	if len(sections) == 0 {
		return NoOutputPlaceholder
	}

	return strings.Join(sections, "\n")
}

// SummaryLine renders a compact one-line summary, or "" without one.
func SummaryLine(summary *planner.PlanSummary) string {
	if summary == nil {
		return ""
	}
	return fmt.Sprintf("%d tasks · %s estimated", summary.TotalTasks, Days(summary.EstimatedDurationDays))
}

// Days formats a day count the way the backend reports them, dropping
// trailing zeroes ("2.5 days", "1 day").
func Days(days float64) string {
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return humanize.Ftoa(days) + " " + unit
}
