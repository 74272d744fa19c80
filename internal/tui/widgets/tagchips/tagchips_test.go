package tagchips

import (
    "strings"
    "testing"

    "plainpad/internal/tui/state"
)

func TestASCIIFallback(t *testing.T) {
    tags := []state.Tag{
        {Kind: state.BOLD},
        {Kind: state.UNDERLINE},
        {Kind: state.FALLBACK, Label: "Helvetica"},
        {Kind: state.COLOR, Label: "Red"},
    }
    out := View(tags, true)
    wants := []string{"[B]", "[U]", "[Helvetica: fallback]", "[Red]"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
    if strings.Contains(out, "[I]") {
        t.Fatalf("unexpected italic chip: %s", out)
    }
}

func TestEmpty(t *testing.T) {
    if out := View(nil, false); out != "" {
        t.Fatalf("expected empty output, got %q", out)
    }
}
