package state

import "testing"

func TestToggleHelp(t *testing.T) {
    s := UIState{}
    s = ToggleHelp(s)
    if !s.ShowHelp { t.Fatalf("expected ShowHelp to be true") }
}

func TestToggleView(t *testing.T) {
    s := UIState{View: Unified}
    s = ToggleView(s)
    if s.View != SideBySide { t.Fatalf("expected SideBySide view") }
    s = ToggleView(s)
    if s.View != Unified { t.Fatalf("expected Unified view") }
}

func TestResizeFallbackToUnified(t *testing.T) {
    s := UIState{View: SideBySide, MinCol: 20}
    s = Resize(s, 30, 10) // threshold = 2*20+3 = 43; 30 < 43 => unified
    if s.View != Unified { t.Fatalf("expected Unified after resize fallback") }
    if s.Notice == "" || s.NoticeErr { t.Fatalf("expected informational fallback notice") }
    if s.Width != 30 || s.Height != 10 { t.Fatalf("size not recorded") }
}

func TestEnterHidesHelpAndBackReturnsToEdit(t *testing.T) {
    s := UIState{ShowHelp: true}
    s = Enter(s, Confirm)
    if s.Mode != Confirm || s.ShowHelp { t.Fatalf("expected Confirm mode without help") }
    s = Back(s)
    if s.Mode != Edit { t.Fatalf("expected Edit mode") }
}

func TestNotices(t *testing.T) {
    s := Fail(UIState{}, "boom")
    if !s.NoticeErr || s.Notice != "boom" { t.Fatalf("expected error notice") }
    s = Notify(s, "ok")
    if s.NoticeErr || s.Notice != "ok" { t.Fatalf("expected info notice") }
    s = ClearNotice(s)
    if s.Notice != "" { t.Fatalf("expected notice cleared") }
}

func TestBodyHeight(t *testing.T) {
    if h := (UIState{Height: 24}).BodyHeight(); h != 21 { t.Fatalf("got %d", h) }
    if h := (UIState{Height: 2}).BodyHeight(); h != 1 { t.Fatalf("got %d", h) }
}
