package state

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// ToggleView switches between Unified and SideBySide compare views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return s
}

// Resize updates the layout and falls back to unified view when too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
    s.Width = width
    s.Height = height
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
        s.NoticeErr = false
    }
    return s
}

// Enter switches input to mode and hides the help overlay.
func Enter(s UIState, m Mode) UIState {
    s.Mode = m
    s.ShowHelp = false
    return s
}

// Back returns input to the document.
func Back(s UIState) UIState {
    s.Mode = Edit
    return s
}

// Notify sets an informational notice.
func Notify(s UIState, msg string) UIState {
    s.Notice = msg
    s.NoticeErr = false
    return s
}

// Fail sets an error notice.
func Fail(s UIState, msg string) UIState {
    s.Notice = msg
    s.NoticeErr = true
    return s
}

// ClearNotice drops the current notice.
func ClearNotice(s UIState) UIState {
    s.Notice = ""
    s.NoticeErr = false
    return s
}
