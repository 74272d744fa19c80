package statusbar

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "plainpad/internal/status"
    "plainpad/internal/tui/state"
)

// StatusBar is the metrics display. It receives metrics from the status
// tracker and renders them right-aligned.
type StatusBar struct {
    metrics status.Metrics
}

func NewStatusBar() *StatusBar { return &StatusBar{} }

// Publish implements status.Publisher.
func (b *StatusBar) Publish(m status.Metrics) { b.metrics = m }

// Metrics returns the last published readout.
func (b *StatusBar) Metrics() status.Metrics { return b.metrics }

var barStyle = lipgloss.NewStyle().Faint(true)

// View composes a status line: file and font on the left, counts on the right.
func (b *StatusBar) View(s state.UIState, file, font, chips string) string {
    left := []string{"[" + s.Mode.String() + "]", file, font}
    if chips != "" {
        left = append(left, chips)
    }
    l := strings.Join(left, "  ")
    r := b.metrics.String()
    gap := s.Width - lipgloss.Width(l) - lipgloss.Width(r)
    if gap < 2 {
        gap = 2
    }
    return l + strings.Repeat(" ", gap) + barStyle.Render(r)
}
