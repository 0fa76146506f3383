// Package macro expands $(NAME) build-variable references the way the
// EPICS build system does when reading a configure/RELEASE file top to
// bottom: a reference resolves against definitions seen earlier in the
// same file, and never against later ones.
package macro

import "regexp"

// refPattern matches a well-formed variable reference. Anything that does
// not match (unbalanced parentheses, odd characters) is simply not a
// reference and passes through untouched.
var refPattern = regexp.MustCompile(`\$\([A-Za-z0-9_]+\)`)

// Expander keeps the variables defined so far in a single file.
// A fresh Expander must be used per file; there is no shared state.
type Expander struct {
	defs map[string]string
}

// New creates an empty Expander.
func New() *Expander {
	return &Expander{defs: make(map[string]string)}
}

// Define expands every $(OTHER) reference in raw against the variables
// defined so far, stores the result under name and returns it. References
// to undefined variables are left verbatim; Define never fails.
func (x *Expander) Define(name, raw string) string {
	value := x.Expand(raw)
	x.defs[name] = value
	return value
}

// Expand substitutes known variable references in s. Unknown references
// are returned as literal text.
func (x *Expander) Expand(s string) string {
	return refPattern.ReplaceAllStringFunc(s, func(ref string) string {
		// Strip the "$(" prefix and ")" suffix.
		name := ref[2 : len(ref)-1]
		if value, ok := x.defs[name]; ok {
			return value
		}
		return ref
	})
}

// Lookup returns the stored value for name.
func (x *Expander) Lookup(name string) (string, bool) {
	value, ok := x.defs[name]
	return value, ok
}
