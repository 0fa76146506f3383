//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=graph.go -destination=mock.gen.go -package=depgraph
package depgraph

import (
	"errors"
	"path/filepath"

	"github.com/gemsw/gemver/pkg/deploy"
	"github.com/gemsw/gemver/pkg/release"
)

// DependencyMap maps a build variable name to the dependency version
// declared under it, or to the dependency path when the path carries no
// recognizable version. An empty non-nil map means the entity resolved
// fine and simply depends on nothing.
type DependencyMap map[string]string

// Graph produces per-entity dependency maps. The walk is hard-capped at
// two hops (an entity, its dependencies, and their dependencies); the
// deployment data is never consumed deeper than that, which also makes
// cycle detection unnecessary.
type Graph interface {
	// DependenciesOf extracts the entity's direct dependencies from its
	// configure/RELEASE file.
	DependenciesOf(e deploy.Entity) (DependencyMap, error)
	// SecondHop extracts, for every direct dependency, that
	// dependency's own direct dependencies. Exactly one further level,
	// keyed by the direct dependency's variable name.
	SecondHop(e deploy.Entity) (map[string]DependencyMap, error)
}

type graph struct {
	root      string
	extractor release.Extractor
}

var _ Graph = (*graph)(nil)

// New creates a Graph over the deployment tree at root.
func New(root string, extractor release.Extractor) Graph {
	return &graph{root: root, extractor: extractor}
}

func (g *graph) DependenciesOf(e deploy.Entity) (DependencyMap, error) {
	records, err := g.extractor.Extract(e.Name, g.releaseFile(e))
	if err != nil {
		return nil, err
	}
	return toMap(records), nil
}

func (g *graph) SecondHop(e deploy.Entity) (map[string]DependencyMap, error) {
	records, err := g.extractor.Extract(e.Name, g.releaseFile(e))
	if err != nil {
		return nil, err
	}
	hops := make(map[string]DependencyMap, len(records))
	for _, rec := range records {
		file := filepath.Join(rec.Path, "configure", "RELEASE")
		subRecords, err := g.extractor.Extract(rec.Variable, file)
		if err != nil {
			// Legacy support modules often have a lib directory but
			// no RELEASE file; they contribute an empty map.
			if errors.Is(err, release.ErrConfigNotFound) {
				hops[rec.Variable] = DependencyMap{}
				continue
			}
			return nil, err
		}
		hops[rec.Variable] = toMap(subRecords)
	}
	return hops, nil
}

// releaseFile locates the entity's configure/RELEASE file. Entities
// resolved from a path or link already know their top directory; entities
// assembled from catalog listings are located by convention, where only
// production paths carry the release segment.
func (g *graph) releaseFile(e deploy.Entity) string {
	if e.Path != "" {
		return filepath.Join(e.Path, "configure", "RELEASE")
	}
	parts := []string{g.root, e.Maturity.String(), e.EpicsVersion, string(e.Area), e.TargetName}
	if e.Area == deploy.AreaIOC {
		parts = append(parts, e.Site)
	}
	if e.Maturity == deploy.MaturityProd {
		parts = append(parts, e.Release)
	}
	parts = append(parts, "configure", "RELEASE")
	return filepath.Join(parts...)
}

func toMap(records []release.Record) DependencyMap {
	m := make(DependencyMap, len(records))
	for _, rec := range records {
		// Later definitions overwrite earlier ones, consistent with
		// macro expansion semantics.
		m[rec.Variable] = rec.DisplayVersion()
	}
	return m
}
