package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/afuentes/planear/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual help items and an
// optional right-aligned note (typically the server address).
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator.
func (s StatusBar) Render(width int, items []string) string {
	return s.RenderWithNote(width, items, "")
}

// RenderWithNote renders help items on the left and a note on the right.
// The note is dropped when there is no room for both.
func (s StatusBar) RenderWithNote(width int, items []string, note string) string {
	left := strings.Join(items, " • ")

	if note == "" || lipgloss.Width(left)+lipgloss.Width(note)+2 > width {
		return styles.StatusBarStyle.Width(width).Render(left)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(note)
	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + note)
}
