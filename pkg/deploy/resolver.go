package deploy

import (
	"os"
	"path/filepath"
	"strings"
)

// Spec is a parsed requested-entity specification of the form
// [*]target[/site]:version. The version is a numeric release, "current"
// (resolve through the redirector), "work", or an explicit filesystem
// path; a missing version means "current". The leading * designates the
// baseline entity of a comparison.
type Spec struct {
	Target   string
	Site     string
	Version  string
	Baseline bool
}

// ParseSpec splits a requested-entity string into its parts. It never
// fails; resolution decides whether the parts make sense.
func ParseSpec(s string) Spec {
	var spec Spec
	s, spec.Baseline = strings.CutPrefix(s, "*")
	target, version, ok := strings.Cut(s, ":")
	if !ok || version == "" {
		version = "current"
	}
	spec.Target, spec.Site, _ = strings.Cut(target, "/")
	spec.Version = version
	return spec
}

// Resolver turns requested-entity specifications into entities, using the
// redirector for "current" requests.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver over the deployment tree at root.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// RedirectorDir returns the directory of active-deployment links.
func (r *Resolver) RedirectorDir() string {
	return filepath.Join(r.root, "prod", "redirector")
}

// LinkTarget returns the raw target of the redirector link for name.
func (r *Resolver) LinkTarget(name string) (string, error) {
	target, err := os.Readlink(filepath.Join(r.RedirectorDir(), name))
	if err != nil {
		return "", &EntityNotFoundError{Name: name}
	}
	return target, nil
}

// ResolveCurrent resolves the redirector link for name to the entity it
// points at. The link target is followed to its final resolved path, which is
// walked upward until a directory segment literally named bin is found;
// the directory above bin is the deployment top. The BSP and boot image
// below bin are kept for summaries.
func (r *Resolver) ResolveCurrent(name string) (Entity, error) {
	link := filepath.Join(r.RedirectorDir(), name)
	if _, err := os.Lstat(link); err != nil {
		return Entity{}, &EntityNotFoundError{Name: name}
	}
	resolved, err := filepath.EvalSymlinks(link)
	if err != nil {
		// Dangling or looping link chain: nothing standard to decode.
		return Entity{}, &NonStandardDeploymentError{Link: name}
	}

	top := ""
	for p := resolved; ; {
		dir := filepath.Dir(p)
		if filepath.Base(p) == "bin" {
			top = dir
			break
		}
		if dir == p {
			break
		}
		p = dir
	}
	if top == "" {
		return Entity{}, &NonStandardDeploymentError{Link: name}
	}

	e := Decode(r.root, top)
	e.Name = name
	e.Boot = filepath.Base(resolved)
	e.BSP = filepath.Base(filepath.Dir(resolved))
	return e, nil
}

// ResolveSpec resolves a parsed specification to an entity. The epics and
// site arguments supply the defaults for requests that do not carry them;
// a site given in the spec itself wins.
func (r *Resolver) ResolveSpec(spec Spec, epics, site string) (Entity, error) {
	if spec.Site != "" {
		site = spec.Site
	}

	var path string
	switch version := strings.ToLower(spec.Version); version {
	case "current":
		name := spec.Target
		if spec.Site != "" {
			name = IOCName(spec.Target, spec.Site)
		}
		e, err := r.ResolveCurrent(name)
		if err != nil {
			return Entity{}, err
		}
		e.Baseline = spec.Baseline
		return e, nil
	case "work":
		path = filepath.Join(r.root, "work", epics, "ioc", spec.Target, site)
	default:
		if _, err := os.Stat(spec.Version); err == nil {
			path, err = filepath.Abs(spec.Version)
			if err != nil {
				return Entity{}, err
			}
		} else {
			// Assume a numeric production release.
			path = filepath.Join(r.root, "prod", epics, "ioc", spec.Target, site, spec.Version)
		}
	}
	if _, err := os.Stat(path); err != nil {
		return Entity{}, &EntityNotFoundError{Name: spec.Target, Path: path}
	}

	e := Decode(r.root, path)
	if e.Name == "" {
		e.Name = spec.Target
	}
	e.Baseline = spec.Baseline
	return e, nil
}
