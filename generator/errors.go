package generator

import "errors"

var (
	ErrNameMissing      = errors.New("component name not provided")
	ErrInvalidName      = errors.New("invalid component name")
	ErrSelectionMissing = errors.New("no code selected")
	ErrNoWorkspace      = errors.New("no workspace opened")
	ErrNoEditor         = errors.New("no selection source: pass --file or pipe a selection on stdin")
	ErrFileExists       = errors.New("component file already exists")
)

// FileExistsError reports a target path that is already taken. Nothing is
// written when it is returned.
type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return "component file already exists: " + e.Path
}

func (e *FileExistsError) Is(target error) bool {
	return target == ErrFileExists
}

// WriteError wraps a persistence failure.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Err == nil {
		return "unknown error"
	}
	return "error creating file: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
