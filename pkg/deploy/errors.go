package deploy

import (
	"errors"
	"fmt"
)

// ErrEntityNotFound is matched by errors.Is when a requested entity has no
// redirector link or deployment path.
var ErrEntityNotFound = errors.New("entity not found")

// ErrNonStandardDeployment is matched by errors.Is when a redirector link
// target cannot be walked up to a bin directory.
var ErrNonStandardDeployment = errors.New("non-standard deployment")

// EntityNotFoundError names the identifier that failed to resolve and,
// when one was computed, the path that was expected to exist.
type EntityNotFoundError struct {
	Name string
	Path string
}

func (e *EntityNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("finding %s: path does not exist %q", e.Name, e.Path)
	}
	return fmt.Sprintf("finding %s: no such link under the redirector", e.Name)
}

func (e *EntityNotFoundError) Unwrap() error {
	return ErrEntityNotFound
}

// NonStandardDeploymentError names the redirector link whose target does
// not follow the <top>/bin/<bsp>/<boot> convention.
type NonStandardDeploymentError struct {
	Link string
}

func (e *NonStandardDeploymentError) Error() string {
	return fmt.Sprintf("finding %s: non-standard deployment", e.Link)
}

func (e *NonStandardDeploymentError) Unwrap() error {
	return ErrNonStandardDeployment
}
