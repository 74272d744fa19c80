package state

// Mode is what currently receives key presses.
type Mode int

const (
    Edit Mode = iota
    Menu
    Confirm
    OpenChooser
    SaveChooser
    FamilyPicker
    SizePicker
    ColorPicker
    ColorEntry
    Compare
)

func (m Mode) String() string {
    switch m {
    case Menu:
        return "MENU"
    case Confirm:
        return "CONFIRM"
    case OpenChooser:
        return "OPEN"
    case SaveChooser:
        return "SAVE"
    case FamilyPicker:
        return "FAMILY"
    case SizePicker:
        return "SIZE"
    case ColorPicker, ColorEntry:
        return "COLOR"
    case Compare:
        return "COMPARE"
    default:
        return "EDIT"
    }
}

// DiffMode controls how the compare view is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds cross-widget UI state used by the status bar, help overlay and compare view.
type UIState struct {
    Mode     Mode
    ShowHelp bool
    View     DiffMode

    // Layout
    Width  int
    Height int
    MinCol int

    // Notices and ephemeral messages
    Notice    string
    NoticeErr bool
}

// Chrome is the number of rows taken by the menu bar, status bar and key line.
const Chrome = 3

// BodyHeight is the space left for the document or an open dialog.
func (s UIState) BodyHeight() int {
    h := s.Height - Chrome
    if h < 1 {
        h = 1
    }
    return h
}
