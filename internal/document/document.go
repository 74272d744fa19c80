// Package document implements the new/open/save lifecycle of the single
// open document, including the guard against discarding unsaved text.
//
// The controller never blocks on the user. An operation that needs a choice
// returns a Prompt; the shell renders it and answers with Confirm, Locate or
// Dismiss, at which point the suspended operation finishes or aborts.
package document

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"plainpad/internal/status"
)

// Surface is the editable text buffer. Content returns the whole buffer
// followed by one structural newline; Replace swaps the buffer for text.
type Surface interface {
	Content() string
	Replace(text string)
}

// Tracker is notified with the surface content after wholesale replacements.
type Tracker interface {
	Recompute(text string) status.Metrics
}

// Checker is implemented by surfaces that cannot hold every text. Check
// reports why text would be altered by Replace; OpenPath refuses such files
// instead of loading a changed copy.
type Checker interface {
	Check(text string) error
}

// Reporter shows outcomes to the user.
type Reporter interface {
	Info(title, msg string)
	Error(title string, err error)
}

type step int

const (
	stepConfirmNew step = iota + 1
	stepOpen
	stepSave
)

type pending struct {
	step      step
	thenClear bool // save issued from the New confirmation
}

// Controller owns the document's file path.
type Controller struct {
	surface  Surface
	tracker  Tracker
	reporter Reporter

	path    string
	pending *pending
}

// NewController returns a controller for an unsaved, empty-path document.
// tracker and reporter may be nil.
func NewController(s Surface, t Tracker, r Reporter) *Controller {
	return &Controller{surface: s, tracker: t, reporter: r}
}

// Path is the last successfully opened or saved location, or "".
func (c *Controller) Path() string { return c.path }

// Title is the file's base name, or "Untitled".
func (c *Controller) Title() string {
	if c.path == "" {
		return "Untitled"
	}
	return filepath.Base(c.path)
}

// Dirty reports whether the surface holds anything besides whitespace.
func (c *Controller) Dirty() bool {
	return strings.TrimSpace(c.surface.Content()) != ""
}

// Pending returns the prompt the controller is waiting on.
func (c *Controller) Pending() Prompt {
	if c.pending == nil {
		return Prompt{}
	}
	switch c.pending.step {
	case stepConfirmNew:
		return confirmPrompt
	case stepOpen:
		return openPrompt
	default:
		return savePrompt
	}
}

// NewFile clears the document. Non-blank content first asks whether to save.
func (c *Controller) NewFile() (Prompt, error) {
	c.pending = nil
	if c.Dirty() {
		c.pending = &pending{step: stepConfirmNew}
		return confirmPrompt, nil
	}
	c.clear()
	return Prompt{}, nil
}

// OpenFile asks for a location to load.
func (c *Controller) OpenFile() (Prompt, error) {
	c.pending = &pending{step: stepOpen}
	return openPrompt, nil
}

// SaveFile writes to the current path, asking for one if the document has
// never been saved.
func (c *Controller) SaveFile() (Prompt, error) {
	c.pending = nil
	if c.path == "" {
		c.pending = &pending{step: stepSave}
		return savePrompt, nil
	}
	return Prompt{}, c.write(c.path)
}

// SaveAs always asks for a location.
func (c *Controller) SaveAs() (Prompt, error) {
	c.pending = &pending{step: stepSave}
	return savePrompt, nil
}

// Confirm answers the New confirmation. ChoiceCancel returns ErrCancelled.
// Unlike a plain save-then-clear, a save that fails or whose location chooser
// is cancelled leaves the document in place rather than clearing it.
func (c *Controller) Confirm(choice Choice) (Prompt, error) {
	if c.pending == nil || c.pending.step != stepConfirmNew {
		return Prompt{}, nil
	}
	c.pending = nil
	switch choice {
	case ChoiceCancel:
		return Prompt{}, ErrCancelled
	case ChoiceSave:
		if c.path == "" {
			c.pending = &pending{step: stepSave, thenClear: true}
			return savePrompt, nil
		}
		if err := c.write(c.path); err != nil {
			return Prompt{}, err
		}
	}
	c.clear()
	return Prompt{}, nil
}

// Locate answers an open or save location prompt. An empty path means the
// chooser was cancelled and returns ErrCancelled with nothing changed.
func (c *Controller) Locate(path string) (Prompt, error) {
	p := c.pending
	if p == nil || p.step == stepConfirmNew {
		return Prompt{}, nil
	}
	c.pending = nil
	if strings.TrimSpace(path) == "" {
		return Prompt{}, ErrCancelled
	}
	if p.step == stepOpen {
		return Prompt{}, c.OpenPath(path)
	}
	path = TextFiles.WithDefaultExt(path)
	if err := c.write(path); err != nil {
		return Prompt{}, err
	}
	if p.thenClear {
		c.clear()
	}
	return Prompt{}, nil
}

// Dismiss cancels whatever prompt is pending.
func (c *Controller) Dismiss() {
	c.pending = nil
}

// OpenPath loads path as UTF-8 text and makes it the current document.
// CRLF and lone CR line endings are read as LF.
func (c *Controller) OpenPath(path string) error {
	data, err := os.ReadFile(path)
	if err == nil && !utf8.Valid(data) {
		err = ErrInvalidUTF8
	}
	text := NormalizeNewlines(string(data))
	if ch, ok := c.surface.(Checker); ok && err == nil {
		err = ch.Check(text)
	}
	if err != nil {
		return c.fail("Open failed", &FileError{Op: "open", Path: path, Err: err})
	}
	c.surface.Replace(text)
	c.path = path
	c.refresh()
	return nil
}

// Baseline reads the saved copy of the document. ok is false for a
// document that has never been saved.
func (c *Controller) Baseline() (text string, ok bool, err error) {
	if c.path == "" {
		return "", false, nil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return "", false, &FileError{Op: "open", Path: c.path, Err: err}
	}
	return NormalizeNewlines(string(data)), true, nil
}

// NormalizeNewlines turns CRLF and lone CR line endings into LF.
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
}

// Body is the document text without the surface's structural newline.
func (c *Controller) Body() string {
	return strings.TrimSuffix(c.surface.Content(), "\n")
}

func (c *Controller) write(path string) error {
	if err := os.WriteFile(path, []byte(c.Body()), 0o644); err != nil {
		return c.fail("Save failed", &FileError{Op: "save", Path: path, Err: err})
	}
	c.path = path
	if c.reporter != nil {
		c.reporter.Info("Saved", "File saved successfully!")
	}
	return nil
}

func (c *Controller) clear() {
	c.surface.Replace("")
	c.path = ""
	c.refresh()
}

func (c *Controller) refresh() {
	if c.tracker != nil {
		c.tracker.Recompute(c.surface.Content())
	}
}

func (c *Controller) fail(title string, err error) error {
	if c.reporter != nil {
		c.reporter.Error(title, err)
	}
	return err
}
