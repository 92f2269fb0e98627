// Package msgs defines shared message types for TUI view transitions.
package msgs

// SubmitPromptMsg is sent when the user submits a project statement.
type SubmitPromptMsg struct {
	Statement string
}

// GoToPromptMsg signals transition back to the prompt view for a new
// request.
type GoToPromptMsg struct{}
