package store

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when the store root does not exist yet.
var ErrNotInitialized = errors.New("store not initialized, run 'cmdx init' first")

// NotFoundError is returned when no entry exists at the requested path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Path)
}

// ExistsError is returned when an add or rename would overwrite an
// existing entry without the overwrite flag.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("command already exists: %s", e.Path)
}

// InvalidPathError is returned for paths that fail ValidatePath.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid command path: %q", e.Path)
}

// FormatError is returned when an entry file does not follow the
// two-line command/explanation format.
type FormatError struct {
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid command file format: %s", e.Path)
}
