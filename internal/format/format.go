package format

import "fmt"

const (
	DefaultFamily = "Helvetica"
	DefaultSize   = 12
)

// EffectiveFont is the ready-to-apply descriptor derived from a State.
type EffectiveFont struct {
	Family    string
	Size      int
	Weight    string // "bold" | "normal"
	Slant     string // "italic" | "roman"
	Underline bool
}

func (f EffectiveFont) Bold() bool   { return f.Weight == "bold" }
func (f EffectiveFont) Italic() bool { return f.Slant == "italic" }

// String renders the descriptor for the status bar, e.g. "Helvetica 12 bold italic underline".
func (f EffectiveFont) String() string {
	s := fmt.Sprintf("%s %d", f.Family, f.Size)
	if f.Bold() {
		s += " bold"
	}
	if f.Italic() {
		s += " italic"
	}
	if f.Underline {
		s += " underline"
	}
	return s
}

// Target receives the effective font. It always covers the whole document.
type Target interface {
	SetFont(EffectiveFont)
}

// State holds the current typographic attributes. Every setter mutates one
// field and re-applies the font to the bound target.
type State struct {
	family    string
	size      int
	bold      bool
	italic    bool
	underline bool

	target Target
}

// New returns a State with the startup defaults bound to target.
// target may be nil; Apply then only recomputes the descriptor.
func New(target Target) *State {
	return &State{family: DefaultFamily, size: DefaultSize, target: target}
}

// Bind replaces the target and applies the current font to it.
func (s *State) Bind(target Target) {
	s.target = target
	s.Apply(target)
}

// Font computes the effective font. It has no side effects.
func (s *State) Font() EffectiveFont {
	f := EffectiveFont{
		Family:    s.family,
		Size:      s.size,
		Weight:    "normal",
		Slant:     "roman",
		Underline: s.underline,
	}
	if s.bold {
		f.Weight = "bold"
	}
	if s.italic {
		f.Slant = "italic"
	}
	return f
}

// Apply sets the effective font as the entire target's font.
func (s *State) Apply(target Target) {
	if target == nil {
		return
	}
	target.SetFont(s.Font())
}

func (s *State) Family() string  { return s.family }
func (s *State) Size() int       { return s.size }
func (s *State) Bold() bool      { return s.bold }
func (s *State) Italic() bool    { return s.italic }
func (s *State) Underline() bool { return s.underline }

// SetFamily accepts any name; unknown families are left to the renderer's fallback.
func (s *State) SetFamily(name string) {
	s.family = name
	s.Apply(s.target)
}

// SetSize does not clamp.
func (s *State) SetSize(n int) {
	s.size = n
	s.Apply(s.target)
}

func (s *State) SetBold(b bool) {
	s.bold = b
	s.Apply(s.target)
}

func (s *State) SetItalic(b bool) {
	s.italic = b
	s.Apply(s.target)
}

func (s *State) SetUnderline(b bool) {
	s.underline = b
	s.Apply(s.target)
}

func (s *State) ToggleBold()      { s.SetBold(!s.bold) }
func (s *State) ToggleItalic()    { s.SetItalic(!s.italic) }
func (s *State) ToggleUnderline() { s.SetUnderline(!s.underline) }
