//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=extractor.go -destination=mock.gen.go -package=release
package release

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gemsw/gemver/pkg/macro"
)

// Framework bookkeeping variables that every RELEASE file defines and that
// are never dependencies in their own right.
var excludedVariables = map[string]struct{}{
	"EPICS_RELEASE": {},
	"EPICS_BASE":    {},
}

// versionPattern recognizes a release string in the last path segment:
// leading digits, a separator, more digits (e.g. 3-1-14-3-BR314, 1.2).
var versionPattern = regexp.MustCompile(`^\d+[-.]\d+`)

// Record is one dependency declared in a RELEASE file: the build variable
// it was declared under, the fully expanded path it points at, and the
// version extracted from that path (empty when no release pattern matched).
type Record struct {
	Variable string
	Path     string
	Version  string
}

// DisplayVersion returns the extracted version, or the full path when the
// last path segment carries no recognizable version. Reports always have
// something to print this way.
func (r Record) DisplayVersion() string {
	if r.Version != "" {
		return r.Version
	}
	return r.Path
}

// Extractor parses a configure/RELEASE file into dependency records.
type Extractor interface {
	// Extract reads the RELEASE file at path on behalf of the named
	// entity. A variable becomes a record only when its expanded path
	// contains a lib subdirectory; malformed lines are skipped, never
	// an error. A missing file is a *ConfigNotFoundError.
	Extract(entity, path string) ([]Record, error)
}

type extractor struct{}

var _ Extractor = (*extractor)(nil)

// NewExtractor creates the filesystem-backed Extractor.
func NewExtractor() Extractor {
	return &extractor{}
}

func (x *extractor) Extract(entity, path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigNotFoundError{Entity: entity, Path: path}
	}
	defer f.Close()

	expander := macro.New()
	var records []Record

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Count(line, "=") != 1 {
			continue
		}
		name, value, _ := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		// Registered unconditionally: later lines may reference this
		// variable even when it is not a dependency itself.
		expanded := expander.Define(name, value)

		if _, excluded := excludedVariables[name]; excluded {
			continue
		}
		if !isModuleDir(expanded) {
			continue
		}
		records = append(records, Record{
			Variable: name,
			Path:     expanded,
			Version:  extractVersion(expanded),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

// isModuleDir reports whether path looks like a deployed module, i.e. has
// a lib subdirectory. Paths with unresolved macro references fail the
// check naturally since they do not exist on disk.
func isModuleDir(path string) bool {
	info, err := os.Stat(filepath.Join(path, "lib"))
	return err == nil && info.IsDir()
}

func extractVersion(path string) string {
	base := filepath.Base(path)
	if versionPattern.MatchString(base) {
		return base
	}
	return ""
}
