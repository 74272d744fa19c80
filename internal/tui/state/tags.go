package state

// TagKind enumerates the formatting chips shown in the status bar.
type TagKind int

const (
    // Stable ordering for display: Bold, Italic, Underline, Fallback, Color
    BOLD TagKind = iota
    ITALIC
    UNDERLINE
    FALLBACK
    COLOR
)

// Tag represents a single status chip. Label carries free text for the
// Fallback (family name) and Color (color name) chips.
type Tag struct {
    Kind  TagKind
    Label string
}
