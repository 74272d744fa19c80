package menubar

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
)

// Item is one row of a dropdown.
type Item struct {
    Label   string
    Accel   string
    Check   bool // row is a checkbutton
    Checked bool
    Sep     bool
}

var (
    barStyle    = lipgloss.NewStyle().Reverse(true)
    activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"})
    boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
    selStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
)

// Bar renders the menu titles across width. active < 0 means no menu is open.
func Bar(titles []string, active, width int) string {
    parts := make([]string, 0, len(titles))
    for i, t := range titles {
        label := " " + t + " "
        if i == active {
            label = activeStyle.Render("[" + t + "]")
        }
        parts = append(parts, label)
    }
    line := strings.Join(parts, " ")
    if w := lipgloss.Width(line); w < width {
        line += strings.Repeat(" ", width-w)
    }
    return barStyle.Render(line)
}

// Offset is the column where title i starts in Bar's output.
func Offset(titles []string, i int) int {
    off := 0
    for j := 0; j < i && j < len(titles); j++ {
        off += lipgloss.Width(titles[j]) + 3
    }
    return off
}

// Dropdown renders the open menu's items with cursor highlighted.
func Dropdown(items []Item, cursor int) string {
    labelW, accelW := 0, 0
    for _, it := range items {
        if w := lipgloss.Width(it.Label); w > labelW {
            labelW = w
        }
        if w := lipgloss.Width(it.Accel); w > accelW {
            accelW = w
        }
    }
    lines := make([]string, 0, len(items))
    for i, it := range items {
        if it.Sep {
            lines = append(lines, strings.Repeat("─", labelW+accelW+6))
            continue
        }
        mark := "    "
        if it.Check {
            mark = "[ ] "
            if it.Checked {
                mark = "[x] "
            }
        }
        row := mark + it.Label + strings.Repeat(" ", labelW-lipgloss.Width(it.Label))
        if accelW > 0 {
            row += "  " + it.Accel + strings.Repeat(" ", accelW-lipgloss.Width(it.Accel))
        }
        if i == cursor {
            row = selStyle.Render(row)
        }
        lines = append(lines, row)
    }
    return boxStyle.Render(strings.Join(lines, "\n"))
}
