package tagchips

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "plainpad/internal/tui/state"
    "plainpad/internal/tui/util"
)

// View renders formatting tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.BOLD:
        return "B"
    case state.ITALIC:
        return "I"
    case state.UNDERLINE:
        return "U"
    case state.FALLBACK:
        return fmt.Sprintf("%s: fallback", t.Label)
    case state.COLOR:
        return t.Label
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
    switch t.Kind {
    case state.BOLD:
        return base.Background(p.Primary).Bold(true)
    case state.ITALIC:
        return base.Background(p.Primary).Italic(true)
    case state.UNDERLINE:
        return base.Background(p.Primary).Underline(true)
    case state.FALLBACK:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.COLOR:
        if t.Label != "" && strings.HasPrefix(t.Label, "#") {
            return base.Background(p.MutedDark).Foreground(lipgloss.Color(t.Label))
        }
        return base.Background(p.MutedDark)
    default:
        return base
    }
}
