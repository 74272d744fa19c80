package diff

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "plainpad/internal/tui/state"
)

var (
    delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint   = lipgloss.NewStyle().Faint(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders saved vs current text. Unified prefixes changed lines with
// -/+ markers and underlines the changed characters; SideBySide aligns the
// two versions in columns.
func (DiffView) View(s state.UIState, saved, current string) string {
    if saved == current {
        return "No changes since last save\n"
    }
    if s.View == state.SideBySide {
        return sideBySide(saved, current, s)
    }
    return unified(saved, current)
}

// Summary counts whole lines added and removed between before and after.
func Summary(before, after string) (added, removed int) {
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)
    for _, df := range diffs {
        n := strings.Count(df.Text, "\n")
        if !strings.HasSuffix(df.Text, "\n") {
            n++
        }
        switch df.Type {
        case dmp.DiffInsert:
            added += n
        case dmp.DiffDelete:
            removed += n
        }
    }
    return added, removed
}

// lineOps pairs the lines of before and after: equal lines, and changed
// lines that are shown with character-level spans.
type lineOp struct {
    before, after string
    hasBefore     bool
    hasAfter      bool
}

func pairLines(before, after string) []lineOp {
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)
    var ops []lineOp
    var dels []string
    flush := func(adds []string) {
        n := len(dels)
        if len(adds) > n {
            n = len(adds)
        }
        for i := 0; i < n; i++ {
            op := lineOp{}
            if i < len(dels) {
                op.before, op.hasBefore = dels[i], true
            }
            if i < len(adds) {
                op.after, op.hasAfter = adds[i], true
            }
            ops = append(ops, op)
        }
        dels = nil
    }
    for _, df := range diffs {
        ls := splitLines(df.Text)
        switch df.Type {
        case dmp.DiffDelete:
            dels = append(dels, ls...)
        case dmp.DiffInsert:
            flush(ls)
        case dmp.DiffEqual:
            flush(nil)
            for _, l := range ls {
                ops = append(ops, lineOp{before: l, after: l, hasBefore: true, hasAfter: true})
            }
        }
    }
    flush(nil)
    return ops
}

func splitLines(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    return strings.Split(s, "\n")
}

func charSpans(bl, al string) (left, right string) {
    d := dmp.New()
    diffs := d.DiffMain(bl, al, false)
    d.DiffCleanupSemantic(diffs)
    var lb, rb strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            lb.WriteString(delChar.Render(df.Text))
        case dmp.DiffInsert:
            rb.WriteString(addChar.Render(df.Text))
        case dmp.DiffEqual:
            lb.WriteString(delLine.Render(df.Text))
            rb.WriteString(addLine.Render(df.Text))
        }
    }
    return lb.String(), rb.String()
}

func unified(before, after string) string {
    var b strings.Builder
    b.WriteString("SAVED vs CURRENT (Unified)\n")
    for _, op := range pairLines(before, after) {
        switch {
        case op.hasBefore && op.hasAfter && op.before == op.after:
            fmt.Fprintf(&b, "  %s\n", faint.Render(op.before))
        case op.hasBefore && op.hasAfter:
            l, r := charSpans(op.before, op.after)
            fmt.Fprintf(&b, "%s%s\n", delLine.Render("- "), l)
            fmt.Fprintf(&b, "%s%s\n", addLine.Render("+ "), r)
        case op.hasBefore:
            fmt.Fprintf(&b, "%s\n", delLine.Render("- "+op.before))
        default:
            fmt.Fprintf(&b, "%s\n", addLine.Render("+ "+op.after))
        }
    }
    return b.String()
}

func sideBySide(before, after string, s state.UIState) string {
    const sep = " │ "
    var b strings.Builder
    b.WriteString("SAVED │ CURRENT\n")
    // Compute column width from total width if provided
    colWidth := 40
    if s.Width > 0 {
        colWidth = (s.Width - len(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    for _, op := range pairLines(before, after) {
        l := clip(op.before, colWidth)
        r := clip(op.after, colWidth)
        if op.before != op.after && op.hasBefore && op.hasAfter {
            l, r = charSpans(l, r)
        } else if op.before == op.after {
            l, r = faint.Render(l), faint.Render(r)
        } else if op.hasBefore {
            l = delLine.Render(l)
        } else {
            r = addLine.Render(r)
        }
        fmt.Fprintf(&b, "%s%s%s\n", pad(l, colWidth), sep, r)
    }
    return b.String()
}

func clip(s string, width int) string {
    runes := []rune(s)
    if len(runes) > width {
        return string(runes[:width])
    }
    return s
}

func pad(s string, width int) string {
    if w := lipgloss.Width(s); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
