package tui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plainpad/internal/document"
	"plainpad/internal/format"
)

const (
	// maxLines is the textarea's own line cap; SetValue drops anything past it.
	maxLines = 10000
	// tabGlyph stands in for a tab inside the textarea, which would otherwise
	// expand it to spaces. Content turns it back into a tab.
	tabGlyph = '␉'
)

// surface is the editable document buffer. It implements document.Surface,
// document.Checker and format.Target; font and foreground always cover the
// whole buffer.
type surface struct {
	ta    textarea.Model
	font  format.EffectiveFont
	color string // "#rrggbb" or "" for the terminal default
}

func newSurface(lineNumbers bool) *surface {
	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = lineNumbers
	s := &surface{ta: ta}
	// Focus after the move: the textarea keeps a pointer to its active style.
	s.ta.Focus()
	return s
}

// Content returns the buffer followed by its structural trailing newline.
func (s *surface) Content() string {
	return strings.ReplaceAll(s.ta.Value(), string(tabGlyph), "\t") + "\n"
}

// Replace swaps the whole buffer.
func (s *surface) Replace(text string) {
	s.ta.SetValue(toBuffer(text))
}

// Insert pastes text at the cursor.
func (s *surface) Insert(text string) {
	s.ta.InsertString(toBuffer(text))
}

func toBuffer(text string) string {
	return strings.ReplaceAll(document.NormalizeNewlines(text), "\t", string(tabGlyph))
}

// Check reports text that Replace could not hold unchanged.
func (s *surface) Check(text string) error {
	if n := strings.Count(text, "\n") + 1; n > maxLines {
		return fmt.Errorf("%d lines, the editor holds at most %d", n, maxLines)
	}
	for i, r := range text {
		switch {
		case r == '\n' || r == '\t':
		case r == tabGlyph, r == utf8.RuneError, unicode.IsControl(r):
			return fmt.Errorf("unsupported character %U at byte %d", r, i)
		}
	}
	return nil
}

// SetFont implements format.Target.
func (s *surface) SetFont(f format.EffectiveFont) {
	s.font = f
	s.restyle()
}

// SetForeground sets the text color of the whole buffer.
func (s *surface) SetForeground(hex string) {
	s.color = hex
	s.restyle()
}

func (s *surface) restyle() {
	st := lipgloss.NewStyle().
		Bold(s.font.Bold()).
		Italic(s.font.Italic()).
		Underline(s.font.Underline)
	if s.color != "" {
		st = st.Foreground(lipgloss.Color(s.color))
	}
	for _, style := range []*textarea.Style{&s.ta.FocusedStyle, &s.ta.BlurredStyle} {
		style.Text = st
		style.CursorLine = st
	}
}

func (s *surface) SetSize(w, h int) {
	s.ta.SetWidth(w)
	s.ta.SetHeight(h)
}

func (s *surface) Update(msg tea.Msg) tea.Cmd {
	// The textarea has no binding for tab.
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyTab {
		s.Insert("\t")
		return nil
	}
	var cmd tea.Cmd
	s.ta, cmd = s.ta.Update(msg)
	return cmd
}

func (s *surface) View() string { return s.ta.View() }
