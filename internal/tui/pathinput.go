package tui

import (
    "os"
    "path/filepath"
    "strings"

    "github.com/charmbracelet/bubbles/textinput"
    tea "github.com/charmbracelet/bubbletea"
)

const maxSuggestions = 8

// pathInput is a one-line location entry with directory-based tab completion.
type pathInput struct {
    input   textinput.Model
    suggest []string
}

func newPathInput() pathInput {
    ti := textinput.New()
    ti.Prompt = "File name: "
    ti.CharLimit = 0
    return pathInput{input: ti}
}

// Reset prefills the entry with seed and focuses it.
func (p *pathInput) Reset(prompt, seed string) tea.Cmd {
    p.input.Prompt = prompt
    p.input.SetValue(seed)
    p.input.CursorEnd()
    p.computeSuggestions()
    return p.input.Focus()
}

// Value is the entered path with ~ and environment variables expanded.
// A blank entry stays blank.
func (p *pathInput) Value() string {
    return expandPath(p.input.Value())
}

func (p *pathInput) Update(msg tea.Msg) tea.Cmd {
    if k, ok := msg.(tea.KeyMsg); ok && k.String() == "tab" {
        if len(p.suggest) > 0 {
            p.input.SetValue(p.suggest[0])
            p.input.CursorEnd()
            p.computeSuggestions()
        }
        return nil
    }
    var cmd tea.Cmd
    p.input, cmd = p.input.Update(msg)
    p.computeSuggestions()
    return cmd
}

func (p *pathInput) computeSuggestions() {
    // Provide simple directory-based suggestions for current input buffer
    in := p.input.Value()
    if strings.TrimSpace(in) == "" { p.suggest = nil; return }
    expanded := in
    if strings.HasPrefix(in, "~") { expanded = expandPath(in) }
    dir := expanded
    base := ""
    if fi, err := os.Stat(expanded); err == nil && fi.IsDir() {
        // ok
    } else {
        dir = filepath.Dir(expanded)
        base = filepath.Base(expanded)
    }
    entries, err := os.ReadDir(dir)
    if err != nil { p.suggest = nil; return }
    var out []string
    for _, e := range entries {
        name := e.Name()
        if base == "" || strings.HasPrefix(strings.ToLower(name), strings.ToLower(base)) {
            cand := filepath.Join(dir, name)
            if e.IsDir() { cand += string(filepath.Separator) }
            // Present with ~/ when within home
            if h, _ := os.UserHomeDir(); h != "" && strings.HasPrefix(cand, h) && strings.HasPrefix(in, "~") {
                cand = "~" + strings.TrimPrefix(cand, h)
            }
            out = append(out, cand)
        }
        if len(out) >= maxSuggestions { break }
    }
    p.suggest = out
}

func (p *pathInput) View() string {
    var b strings.Builder
    b.WriteString(p.input.View() + "\n")
    for _, s := range p.suggest { b.WriteString(faintStyle.Render("  • ")+s+"\n") }
    b.WriteString(faintStyle.Render("enter: ok   tab: complete   esc: cancel"))
    return b.String()
}

func expandPath(p string) string {
    p = strings.TrimSpace(p)
    if p == "" {
        return ""
    }
    if strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil { p = abs }
    }
    return p
}
