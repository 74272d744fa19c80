package editor

import (
    "github.com/charmbracelet/lipgloss"
    "plainpad/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View fits the surface's rendering into the body area so the chrome below
// it never moves, whatever the buffer's height.
func (Editor) View(s state.UIState, surface string) string {
    return lipgloss.NewStyle().
        Width(s.Width).
        Height(s.BodyHeight()).
        MaxHeight(s.BodyHeight()).
        Render(surface)
}

// Dialog centers a dialog box in the body area.
func (Editor) Dialog(s state.UIState, box string) string {
    return lipgloss.Place(s.Width, s.BodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

// Panel places content top-left in the body area.
func (Editor) Panel(s state.UIState, content string) string {
    return lipgloss.NewStyle().MaxHeight(s.BodyHeight()).Render(
        lipgloss.Place(s.Width, s.BodyHeight(), lipgloss.Left, lipgloss.Top, content))
}
