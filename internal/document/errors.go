package document

import (
	"errors"
	"fmt"
	"io/fs"
)

// Errors returned by document operations.
var (
	// ErrFileRead matches any failure to load a document.
	ErrFileRead = errors.New("file read error")

	// ErrFileWrite matches any failure to persist a document.
	ErrFileWrite = errors.New("file write error")

	// ErrCancelled is a chooser or prompt dismissed by the user. Nothing
	// changes and nothing is reported; callers treat it as a normal outcome.
	ErrCancelled = errors.New("cancelled by user")

	// ErrInvalidUTF8 indicates the file is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("not valid UTF-8 text")
)

// FileError describes a failed open or save.
type FileError struct {
	// Op is "open" or "save".
	Op string
	// Path is the file that failed.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *FileError) Error() string {
	err := e.Err
	// os errors already name the operation and path.
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is lets errors.Is classify a FileError as ErrFileRead or ErrFileWrite.
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrFileRead:
		return e.Op == "open"
	case ErrFileWrite:
		return e.Op == "save"
	}
	return false
}
