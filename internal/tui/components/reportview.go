package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ReportViewport wraps bubbles/viewport.Model for scrolling a fixed
// document (the rendered plan). Unlike a streaming output pane it has no
// auto-scroll: new content always presents from the top.
type ReportViewport struct {
	viewport viewport.Model
	width    int
	height   int
}

// NewReportViewport creates a ReportViewport with the given dimensions.
func NewReportViewport(width, height int) ReportViewport {
	vp := viewport.New(width, height)
	vp.SetContent("")
	return ReportViewport{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// SetSize updates the viewport dimensions, clamping the scroll offset.
func (r *ReportViewport) SetSize(width, height int) {
	if r.width == width && r.height == height {
		return
	}
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height
	r.viewport.SetYOffset(r.viewport.YOffset)
}

// SetContent replaces the document and scrolls back to the top.
func (r *ReportViewport) SetContent(content string) {
	r.viewport.SetContent(content)
	r.viewport.GotoTop()
}

// Update handles viewport key and mouse events (scrolling).
func (r ReportViewport) Update(msg tea.Msg) (ReportViewport, tea.Cmd) {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// View renders the visible window of the document.
func (r ReportViewport) View() string {
	return r.viewport.View()
}

// ScrollPercent returns the scroll position in [0, 1].
func (r ReportViewport) ScrollPercent() float64 {
	return r.viewport.ScrollPercent()
}
