package menubar

import (
    "strings"
    "testing"
)

func TestBarMarksActive(t *testing.T) {
    out := Bar([]string{"File", "Font"}, 1, 30)
    if !strings.Contains(out, "[Font]") || strings.Contains(out, "[File]") {
        t.Fatalf("unexpected bar %q", out)
    }
}

func TestDropdownChecks(t *testing.T) {
    out := Dropdown([]Item{
        {Label: "Bold", Check: true, Checked: true},
        {Label: "Italic", Check: true},
        {Sep: true},
        {Label: "Size…", Accel: "F4"},
    }, 0)
    for _, w := range []string{"[x] Bold", "[ ] Italic", "Size…", "F4", "─"} {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in dropdown:\n%s", w, out)
        }
    }
}

func TestOffset(t *testing.T) {
    titles := []string{"File", "Edit", "Font"}
    if got := Offset(titles, 0); got != 0 {
        t.Fatalf("got %d", got)
    }
    if got := Offset(titles, 2); got != 14 {
        t.Fatalf("got %d", got)
    }
}
