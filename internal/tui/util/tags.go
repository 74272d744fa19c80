package util

import (
    "plainpad/internal/format"
    "plainpad/internal/tui/state"
)

// ComputeTags calculates the formatting chips for the status bar from the
// effective font, whether its family is installed, and the foreground
// color ("" for the terminal default).
//
// The returned slice preserves a stable order:
//   Bold, Italic, Underline, Fallback, Color
func ComputeTags(f format.EffectiveFont, installed bool, color string) []state.Tag {
    tags := make([]state.Tag, 0, 5)
    if f.Bold() {
        tags = append(tags, state.Tag{Kind: state.BOLD})
    }
    if f.Italic() {
        tags = append(tags, state.Tag{Kind: state.ITALIC})
    }
    if f.Underline {
        tags = append(tags, state.Tag{Kind: state.UNDERLINE})
    }
    // Terminals cannot switch typefaces; flag families the system lacks so
    // the user knows the renderer fell back.
    if !installed {
        tags = append(tags, state.Tag{Kind: state.FALLBACK, Label: f.Family})
    }
    if color != "" {
        tags = append(tags, state.Tag{Kind: state.COLOR, Label: ColorName(color)})
    }
    return tags
}
