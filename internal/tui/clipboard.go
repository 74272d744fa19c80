package tui

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"

	"plainpad/internal/tui/state"
)

// Clipboard is the system clipboard used by Edit → Copy All / Paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns the OS clipboard, or nil when no clipboard tool
// is available (e.g. a headless Linux box without xclip/xsel/wl-copy).
func SystemClipboard() Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}

func (m *model) copyAll() {
	if m.clip == nil {
		m.ui = state.Fail(m.ui, "Clipboard unavailable")
		return
	}
	if err := m.clip.WriteAll(m.doc.Body()); err != nil {
		log.Printf("copy: %v", err)
		m.ui = state.Fail(m.ui, "Copy failed: "+err.Error())
		return
	}
	chars := m.tracker.Last().Chars
	m.ui = state.Notify(m.ui, "Copied "+humanize.Comma(int64(chars))+" characters")
}

func (m *model) paste() {
	if m.clip == nil {
		m.ui = state.Fail(m.ui, "Clipboard unavailable")
		return
	}
	text, err := m.clip.ReadAll()
	if err != nil {
		log.Printf("paste: %v", err)
		m.ui = state.Fail(m.ui, "Paste failed: "+err.Error())
		return
	}
	m.surface.Insert(text)
	m.tracker.Recompute(m.surface.Content())
}
