package planner

// Agent identifies a stage of the backend planning pipeline. It only
// affects display: each agent maps to an icon and label, nothing else.
type Agent string

const (
	AgentSystem     Agent = "system"
	AgentPlanner    Agent = "planner"
	AgentTimeline   Agent = "timeline"
	AgentDependency Agent = "dependency"
	AgentFormatter  Agent = "formatter"
)

// Icon returns the display glyph for the agent. Unknown agents get a
// neutral glyph rather than failing the lookup.
func (a Agent) Icon() string {
	switch a {
	case AgentSystem:
		return "⚙"
	case AgentPlanner:
		return "🧠"
	case AgentTimeline:
		return "📅"
	case AgentDependency:
		return "🔗"
	case AgentFormatter:
		return "📄"
	default:
		return "•"
	}
}

// DisplayName returns the human-readable label for the agent.
func (a Agent) DisplayName() string {
	switch a {
	case AgentSystem:
		return "System"
	case AgentPlanner:
		return "Planner Agent"
	case AgentTimeline:
		return "Timeline Agent"
	case AgentDependency:
		return "Dependency Agent"
	case AgentFormatter:
		return "Formatter Agent"
	default:
		if a == "" {
			return "Agent"
		}
		return string(a)
	}
}
