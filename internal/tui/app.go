// Package tui hosts the interactive planear client: a prompt form, a
// streaming generation monitor, and the rendered plan.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/afuentes/planear/internal/config"
	"github.com/afuentes/planear/internal/planner"
	"github.com/afuentes/planear/internal/tui/msgs"
	"github.com/afuentes/planear/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewPrompt View = iota
	ViewGenerate
)

// Model is the main Bubble Tea model that routes between views.
type Model struct {
	currentView View

	prompt   views.PromptModel
	generate views.GenerateModel

	generateFunc views.GenerateFunc
	serverURL    string

	width  int
	height int
}

// Run starts the TUI application against the configured server.
func Run(cfg *config.Config) error {
	client := planner.New(cfg.Server.URL)
	p := tea.NewProgram(
		NewModel(cfg.Server.URL, client.GeneratePlan),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel creates the root model. The generate function is injected so
// tests can drive the flow without a server.
func NewModel(serverURL string, generate views.GenerateFunc) Model {
	return Model{
		currentView:  ViewPrompt,
		prompt:       views.NewPromptModel(serverURL),
		generateFunc: generate,
		serverURL:    serverURL,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.prompt.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetSize(msg.Width, msg.Height)
		m.generate.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.SubmitPromptMsg:
		// One request at a time; the prompt view is unreachable while a
		// stream is open, so this cannot preempt an in-flight request.
		m.generate = views.NewGenerateModel(msg.Statement, m.generateFunc, m.serverURL)
		m.generate.SetSize(m.width, m.height)
		m.currentView = ViewGenerate
		return m, m.generate.Init()

	case msgs.GoToPromptMsg:
		m.prompt.Reset()
		m.currentView = ViewPrompt
		return m, m.prompt.Init()
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	case ViewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewGenerate:
		return m.generate.View()
	default:
		return m.prompt.View()
	}
}
