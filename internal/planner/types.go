// Package planner contains the wire types and streaming HTTP client for the
// multi-agent project planning service.
package planner

// Request is the JSON body sent to the plan generation endpoint.
type Request struct {
	ProjectStatement string `json:"project_statement"`
}

// Event status values used on the streaming channel.
const (
	StatusStarting  = "starting"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusError     = "error"
)

// StatusEvent is one decoded frame from the plan generation stream.
// The Status field selects the variant: starting/running carry an agent
// indicator update, completed carries the finished plan in Data, and error
// carries a backend-reported failure message.
type StatusEvent struct {
	Status  string      `json:"status"`
	Agent   Agent       `json:"agent"`
	Message string      `json:"message"`
	Data    *PlanResult `json:"data,omitempty"`
}

// Terminal reports whether the event ends the request (completed or error).
func (e StatusEvent) Terminal() bool {
	return e.Status == StatusCompleted || e.Status == StatusError
}

// PlanResult is the finalized plan produced by the backend pipeline.
type PlanResult struct {
	FormattedOutput FormattedOutput  `json:"formatted_output"`
	DependencyTasks []DependencyTask `json:"dependency_tasks"`
}

// FormattedOutput holds the pre-rendered representations of a plan. Every
// field is optional; the backend omits sections its formatter could not
// produce.
type FormattedOutput struct {
	Summary      *PlanSummary `json:"summary,omitempty"`
	Markdown     string       `json:"markdown,omitempty"`
	MermaidGantt string       `json:"mermaid_gantt,omitempty"`
}

// PlanSummary aggregates plan-level statistics.
type PlanSummary struct {
	ProjectStatement      string         `json:"project_statement,omitempty"`
	TotalTasks            int            `json:"total_tasks"`
	EstimatedDurationDays float64        `json:"estimated_duration_days"`
	CategoryDistribution  map[string]int `json:"category_distribution,omitempty"`
	PriorityDistribution  map[string]int `json:"priority_distribution,omitempty"`
}

// Task priority values. The backend may emit anything; unknown values get
// neutral display styling.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// DependencyTask is one unit of work in the generated plan. Sequence order
// in PlanResult.DependencyTasks is the display order; the client does not
// reorder or validate the dependency graph.
type DependencyTask struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Description           string           `json:"description,omitempty"`
	Category              string           `json:"category,omitempty"`
	Priority              string           `json:"priority,omitempty"`
	EstimatedComplexity   string           `json:"estimated_complexity,omitempty"`
	EstimatedDurationDays float64          `json:"estimated_duration_days"`
	StartDate             string           `json:"start_date,omitempty"`
	EndDate               string           `json:"end_date,omitempty"`
	BufferDays            float64          `json:"buffer_days,omitempty"`
	Dependencies          []TaskDependency `json:"dependencies,omitempty"`
	CanParallel           []string         `json:"can_parallel,omitempty"`
}

// TaskDependency describes one edge between tasks.
type TaskDependency struct {
	DependsOn    string `json:"depends_on"`
	Relationship string `json:"relationship"`
	Description  string `json:"description,omitempty"`
}
