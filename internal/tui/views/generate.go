package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/afuentes/planear/internal/planner"
	"github.com/afuentes/planear/internal/render"
	"github.com/afuentes/planear/internal/session"
	"github.com/afuentes/planear/internal/tui/components"
	"github.com/afuentes/planear/internal/tui/msgs"
	"github.com/afuentes/planear/internal/tui/styles"
)

// GenerateFunc matches planner.Client.GeneratePlan. It can be replaced in
// tests to drive the view without a server.
type GenerateFunc func(ctx context.Context, statement string) (<-chan planner.StatusEvent, error)

// renderDiagram is the diagram boundary. Package-level var so tests can
// substitute a failing renderer.
var renderDiagram = render.SafeDiagram

// StreamStartedMsg is sent when the request was accepted and the stream
// is open.
type StreamStartedMsg struct {
	Events <-chan planner.StatusEvent
}

// StatusEventMsg carries one decoded frame from the stream.
type StatusEventMsg struct {
	Event planner.StatusEvent
}

// StreamClosedMsg is sent when the stream ends.
type StreamClosedMsg struct{}

// RequestFailedMsg is sent when the request could not be started
// (validation, transport, or connectivity failure).
type RequestFailedMsg struct {
	Err error
}

// GenerateModel is the model for the plan generation monitor: it owns the
// request lifecycle state and renders the streaming indicator, the final
// plan, or the failure.
type GenerateModel struct {
	statement string
	generate  GenerateFunc
	serverURL string

	state  session.State
	events <-chan planner.StatusEvent

	spinner spinner.Model
	report  components.ReportViewport

	// Diagram boundary state: a rendering failure lands here instead of
	// propagating, and `r` re-attempts.
	diagramErr error

	width  int
	height int
}

// NewGenerateModel creates a generation monitor for the given statement.
func NewGenerateModel(statement string, generate GenerateFunc, serverURL string) GenerateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return GenerateModel{
		statement: statement,
		generate:  generate,
		serverURL: serverURL,
		state:     session.Start(session.State{}),
		spinner:   s,
		report:    components.NewReportViewport(80, 20),
	}
}

// Init implements tea.Model.
func (m GenerateModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startRequest(),
	)
}

// startRequest opens the stream in the background. The stream has no
// cancellation: once opened it is read to completion.
func (m GenerateModel) startRequest() tea.Cmd {
	return func() tea.Msg {
		events, err := m.generate(context.Background(), m.statement)
		if err != nil {
			return RequestFailedMsg{Err: err}
		}
		return StreamStartedMsg{Events: events}
	}
}

// listenForEvent waits for the next frame from the stream.
func (m GenerateModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return StreamClosedMsg{}
		}
		return StatusEventMsg{Event: event}
	}
}

// Update implements tea.Model.
func (m GenerateModel) Update(msg tea.Msg) (GenerateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.report.SetSize(m.contentWidth(), m.contentHeight())
		return m, nil

	case spinner.TickMsg:
		if m.state.Loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case StreamStartedMsg:
		m.events = msg.Events
		return m, m.listenForEvent()

	case StatusEventMsg:
		m.state = session.Reduce(m.state, msg.Event)
		if m.state.Phase == session.PhaseCompleted {
			m.buildDocument()
		}
		return m, m.listenForEvent()

	case StreamClosedMsg:
		m.state = session.Finish(m.state)
		if m.state.Phase == session.PhaseIdle {
			// Stream ended without a terminal event; show the
			// placeholders rather than an empty document.
			m.buildDocument()
		}
		return m, nil

	case RequestFailedMsg:
		m.state = session.Fail(m.state, msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current state.
func (m GenerateModel) handleKeyPress(msg tea.KeyMsg) (GenerateModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if !m.state.Loading() {
			return m, tea.Quit
		}
		return m, nil
	case "n":
		// New request; disabled while one is in flight.
		if !m.state.Loading() {
			return m, func() tea.Msg { return msgs.GoToPromptMsg{} }
		}
		return m, nil
	case "r":
		if m.diagramErr != nil {
			m.buildDocument()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

// buildDocument renders the report and diagram into the viewport. The
// diagram goes through the isolating boundary: a rendering failure shows
// an inline error panel and leaves the report intact.
func (m *GenerateModel) buildDocument() {
	var b strings.Builder

	result := m.state.Result
	b.WriteString(render.Report(result))
	b.WriteString("\n")

	b.WriteString(styles.SelectedStyle.Render("Task Order"))
	b.WriteString("\n")

	var tasks []planner.DependencyTask
	if result != nil {
		tasks = result.DependencyTasks
	}

	diagram, err := renderDiagram(tasks)
	m.diagramErr = err
	if err != nil {
		panel := styles.ErrorPanelStyle.Render("✗ Could not draw the task diagram\n" + err.Error() + "\nPress r to try again")
		b.WriteString(panel)
		b.WriteString("\n")
	} else {
		b.WriteString(diagram)
	}

	m.report.SetContent(b.String())
}

// State returns the current request lifecycle state.
func (m GenerateModel) State() session.State {
	return m.state
}

// DiagramErr returns the diagram boundary error, if any.
func (m GenerateModel) DiagramErr() error {
	return m.diagramErr
}

// SetSize updates the model dimensions.
func (m *GenerateModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.report.SetSize(m.contentWidth(), m.contentHeight())
}

func (m GenerateModel) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m GenerateModel) contentHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

// View implements tea.Model.
func (m GenerateModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.state.Phase {
	case session.PhaseSubmitting, session.PhaseStreaming:
		return m.renderStreaming()
	case session.PhaseErrored:
		return m.renderErrored()
	default:
		return m.renderCompleted()
	}
}

// renderStreaming shows the spinner and the transient agent indicator.
func (m GenerateModel) renderStreaming() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Generating Plan")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if ind := m.state.Indicator; ind != nil {
		agentLine := m.spinner.View() + " " + ind.Agent.Icon() + " " +
			styles.IndicatorStyle.Render(ind.Agent.DisplayName()) + ": " + ind.Message
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, agentLine))
		b.WriteString("\n")
	}

	lines := strings.Count(b.String(), "\n") + 1
	remainingLines := m.height - lines - 1
	if remainingLines > 0 {
		b.WriteString(strings.Repeat("\n", remainingLines))
	}

	statusItems := []string{"Please wait...", "Ctrl+C Quit"}
	b.WriteString(components.NewStatusBar().RenderWithNote(m.width, statusItems, m.serverURL))

	return b.String()
}

// renderErrored shows the failure message. A plan completed earlier in
// the same stream stays visible underneath.
func (m GenerateModel) renderErrored() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Plan Generation Failed")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errLine := styles.ErrorStyle.Render("✗ " + m.state.ErrMsg)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errLine))
	b.WriteString("\n\n")

	if m.state.Result != nil {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.report.View()))
		b.WriteString("\n")
	}

	lines := strings.Count(b.String(), "\n") + 1
	remainingLines := m.height - lines - 1
	if remainingLines > 0 {
		b.WriteString(strings.Repeat("\n", remainingLines))
	}

	statusItems := []string{"n New plan", "q Quit"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// renderCompleted shows the rendered plan document.
func (m GenerateModel) renderCompleted() string {
	var b strings.Builder

	title := styles.TitleStyle.Render("Project Plan")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	var summary *planner.PlanSummary
	if m.state.Result != nil {
		summary = m.state.Result.FormattedOutput.Summary
	}
	if line := render.SummaryLine(summary); line != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.report.View()))
	b.WriteString("\n")

	lines := strings.Count(b.String(), "\n") + 1
	remainingLines := m.height - lines - 1
	if remainingLines > 0 {
		b.WriteString(strings.Repeat("\n", remainingLines))
	}

	statusItems := []string{"↑/↓ Scroll", "n New plan", "q Quit"}
	if m.diagramErr != nil {
		statusItems = append([]string{"r Retry diagram"}, statusItems...)
	}
	b.WriteString(components.NewStatusBar().RenderWithNote(m.width, statusItems, m.serverURL))

	return b.String()
}
