package helpoverlay

import (
    "fmt"
    "strings"

    "plainpad/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(s state.UIState) string {
    sections := []struct{
        title string
        keys  []string
    }{
        {"File", []string{"ctrl+n: new", "ctrl+o: open", "ctrl+s: save", "ctrl+q: exit"}},
        {"Menus", []string{"F10/Esc: open menu bar", "←/→: switch menu", "↑/↓: move", "Enter: select", "Esc: close"}},
        {"Dialogs", []string{"y/n/c: save, discard, cancel", "Tab: type a path (open)", "/: filter lists", "Esc: cancel"}},
        {"Compare", []string{"v: unified/side-by-side", "↑/↓ PgUp/PgDn: scroll", "Esc/q: back"}},
        {"View", []string{"F1: toggle this help"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", s.Mode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
