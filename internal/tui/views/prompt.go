// Package views contains the TUI screens: the prompt form and the plan
// generation monitor.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/afuentes/planear/internal/tui/components"
	"github.com/afuentes/planear/internal/tui/msgs"
	"github.com/afuentes/planear/internal/tui/styles"
)

// validationMessage is shown for an empty submission. No request leaves
// the client in that case.
const validationMessage = "Please enter a project description first"

// PromptModel is the model for the project statement form.
type PromptModel struct {
	input     textarea.Model
	errorMsg  string
	serverURL string
	width     int
	height    int
}

// NewPromptModel creates the prompt view pointed at the given server.
func NewPromptModel(serverURL string) PromptModel {
	ta := textarea.New()
	ta.Placeholder = "Describe your project (goals, constraints, anything the agents should know)..."
	ta.SetHeight(6)
	ta.ShowLineNumbers = false
	ta.Focus()

	return PromptModel{
		input:     ta,
		serverURL: serverURL,
	}
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m PromptModel) Update(msg tea.Msg) (PromptModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 8; w > 20 {
			m.input.SetWidth(w)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the statement and hands it to the app. Empty or
// whitespace-only input shows the validation message and stays put.
func (m PromptModel) submit() (PromptModel, tea.Cmd) {
	statement := strings.TrimSpace(m.input.Value())
	if statement == "" {
		m.errorMsg = validationMessage
		return m, nil
	}

	m.errorMsg = ""
	return m, func() tea.Msg { return msgs.SubmitPromptMsg{Statement: statement} }
}

// Reset clears the form error when the view is shown again.
func (m *PromptModel) Reset() {
	m.errorMsg = ""
	m.input.Focus()
}

// Value returns the current statement text.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// ErrorMsg returns the current validation message, if any.
func (m PromptModel) ErrorMsg() string {
	return m.errorMsg
}

// SetSize updates the model dimensions.
func (m *PromptModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View implements tea.Model.
func (m PromptModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("Plan a Project")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	hint := styles.SubtleStyle.Render("The planning agents will break it into tasks, durations, and dependencies.")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hint))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))
	b.WriteString("\n")

	if m.errorMsg != "" {
		errLine := styles.ErrorStyle.Render("✗ " + m.errorMsg)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errLine))
		b.WriteString("\n")
	}

	// Fill remaining space
	lines := strings.Count(b.String(), "\n") + 1
	remainingLines := m.height - lines - 1 // -1 for status bar
	if remainingLines > 0 {
		b.WriteString(strings.Repeat("\n", remainingLines))
	}

	statusItems := []string{"Ctrl+S Generate plan", "Ctrl+C Quit"}
	b.WriteString(components.NewStatusBar().RenderWithNote(m.width, statusItems, m.serverURL))

	return b.String()
}
