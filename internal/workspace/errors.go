package workspace

import (
	"errors"
	"fmt"
)

// ErrNoMarker is returned when a command-driven workspace is constructed
// without a marker. The marker is what makes repeat construction against
// an initialized directory side-effect free, so it is required up front.
var ErrNoMarker = errors.New("command-driven workspace requires a marker")

// OutOfBoundsError is returned by AddFile when a path resolves to a
// location that equals or escapes the workspace working directory.
type OutOfBoundsError struct {
	Path       string // the path as given by the caller
	WorkingDir string // the workspace root it must stay inside
}

// Error implements the error interface.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("path %q is not inside working directory %q", e.Path, e.WorkingDir)
}

// AsOutOfBounds checks if err is an OutOfBoundsError and extracts it.
func AsOutOfBounds(err error, target **OutOfBoundsError) bool {
	return errors.As(err, target)
}
