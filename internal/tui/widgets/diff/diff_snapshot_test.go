package diff

import (
    "strings"
    "testing"

    "plainpad/internal/tui/state"
)

func TestUnifiedSnapshot(t *testing.T) {
    v := NewDiffView()
    s := state.UIState{View: state.Unified}
    out := v.View(s, "a\nb\nc", "a\nB\nc\nd")
    if !strings.HasPrefix(out, "SAVED vs CURRENT (Unified)\n") {
        t.Fatalf("missing unified header: %q", out)
    }
    for _, want := range []string{"  a\n", "- b\n", "+ B\n", "+ d\n"} {
        if !strings.Contains(out, want) {
            t.Fatalf("expected %q in unified output:\n%s", want, out)
        }
    }
}

func TestSideBySideSnapshot(t *testing.T) {
    v := NewDiffView()
    s := state.UIState{View: state.SideBySide, Width: 60}
    out := v.View(s, "left", "right")
    if !strings.HasPrefix(out, "SAVED │ CURRENT\n") {
        t.Fatalf("missing sbs header")
    }
    if !strings.Contains(out, " │ ") {
        t.Fatalf("missing separator")
    }
}

func TestNoChanges(t *testing.T) {
    out := NewDiffView().View(state.UIState{}, "same", "same")
    if !strings.HasPrefix(out, "No changes") {
        t.Fatalf("got %q", out)
    }
}

func TestSummary(t *testing.T) {
    cases := []struct {
        before, after  string
        added, removed int
    }{
        {"a\nb\n", "a\nb\n", 0, 0},
        {"a\nb\n", "a\nb\nc\n", 1, 0},
        {"a\nb\nc", "a\nc", 0, 1},
        {"a\nb", "a\nx", 1, 1},
        {"", "one", 1, 0},
    }
    for _, tc := range cases {
        a, r := Summary(tc.before, tc.after)
        if a != tc.added || r != tc.removed {
            t.Fatalf("Summary(%q, %q) = +%d -%d, want +%d -%d", tc.before, tc.after, a, r, tc.added, tc.removed)
        }
    }
}
