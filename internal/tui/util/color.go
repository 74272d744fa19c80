package util

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    colorful "github.com/lucasb-eyer/go-colorful"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
    }
}

// NamedColor is an entry of the text color picker.
type NamedColor struct {
    Name string
    Hex  string
}

// TextColors lists the picker's preset foreground colors. Hex "" is the
// terminal's default foreground.
var TextColors = []NamedColor{
    {"Default", ""},
    {"Black", "#000000"},
    {"White", "#FFFFFF"},
    {"Gray", "#808080"},
    {"Red", "#FF0000"},
    {"Maroon", "#800000"},
    {"Orange", "#FFA500"},
    {"Yellow", "#FFFF00"},
    {"Green", "#008000"},
    {"Lime", "#00FF00"},
    {"Teal", "#008080"},
    {"Cyan", "#00FFFF"},
    {"Blue", "#0000FF"},
    {"Navy", "#000080"},
    {"Purple", "#800080"},
    {"Magenta", "#FF00FF"},
}

// ParseColor accepts a preset name (case-insensitive) or a "#rgb"/"#rrggbb"
// hex value and returns the normalized "#rrggbb" form. "" and "default"
// reset to the terminal foreground.
func ParseColor(s string) (string, error) {
    s = strings.TrimSpace(s)
    for _, c := range TextColors {
        if strings.EqualFold(s, c.Name) {
            return c.Hex, nil
        }
    }
    if s == "" {
        return "", nil
    }
    digits := strings.TrimPrefix(s, "#")
    // colorful.Hex scans leniently and accepts trailing junk such as "#00ff0g".
    if n := len(digits); (n != 3 && n != 6) || strings.Trim(digits, "0123456789abcdefABCDEF") != "" {
        return "", fmt.Errorf("invalid color %q: want a name or #rrggbb", digits)
    }
    c, err := colorful.Hex("#" + digits)
    if err != nil {
        return "", fmt.Errorf("invalid color %q: %w", digits, err)
    }
    return c.Hex(), nil
}

// ColorName returns the preset name for hex, or hex itself.
func ColorName(hex string) string {
    for _, c := range TextColors {
        if strings.EqualFold(c.Hex, hex) {
            return c.Name
        }
    }
    return hex
}
