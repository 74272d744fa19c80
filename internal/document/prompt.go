package document

import (
	"path/filepath"
	"strings"
)

// PromptKind names the user interaction an operation is waiting on.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptConfirmSave
	PromptOpenLocation
	PromptSaveLocation
)

func (k PromptKind) String() string {
	switch k {
	case PromptConfirmSave:
		return "confirm-save"
	case PromptOpenLocation:
		return "open-location"
	case PromptSaveLocation:
		return "save-location"
	default:
		return "none"
	}
}

// Choice is the answer to a three-way save confirmation.
type Choice int

const (
	ChoiceSave Choice = iota
	ChoiceDiscard
	ChoiceCancel
)

// FileFilter restricts what a chooser lists. It does not constrain names
// typed by the user beyond adding DefaultExt to names without an extension.
type FileFilter struct {
	Label      string
	Extensions []string
	DefaultExt string
}

// TextFiles is the filter used by open and save.
var TextFiles = FileFilter{Label: "Text Files", Extensions: []string{".txt"}, DefaultExt: ".txt"}

// Match reports whether name passes the filter.
func (f FileFilter) Match(name string) bool {
	if len(f.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range f.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// WithDefaultExt appends DefaultExt when path has no extension.
func (f FileFilter) WithDefaultExt(path string) string {
	if f.DefaultExt == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + f.DefaultExt
}

// Prompt is returned by operations that need an answer from the user before
// they can finish. The zero Prompt means the operation completed.
type Prompt struct {
	Kind    PromptKind
	Title   string
	Message string
	Filter  FileFilter
}

// Pending reports whether the prompt still needs an answer.
func (p Prompt) Pending() bool { return p.Kind != PromptNone }

var (
	confirmPrompt = Prompt{Kind: PromptConfirmSave, Title: "Confirm", Message: "Save current file?"}
	openPrompt    = Prompt{Kind: PromptOpenLocation, Title: "Open", Filter: TextFiles}
	savePrompt    = Prompt{Kind: PromptSaveLocation, Title: "Save As", Filter: TextFiles}
)
