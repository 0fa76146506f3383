package release

import (
	"errors"
	"fmt"
)

// ErrConfigNotFound is matched by errors.Is when an entity has no
// configure/RELEASE file.
var ErrConfigNotFound = errors.New("configuration file not found")

// ConfigNotFoundError reports a missing configure/RELEASE file, naming the
// entity whose dependencies were being extracted.
type ConfigNotFoundError struct {
	Entity string
	Path   string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("extracting modules for %s: no such file %s", e.Entity, e.Path)
}

func (e *ConfigNotFoundError) Unwrap() error {
	return ErrConfigNotFound
}
