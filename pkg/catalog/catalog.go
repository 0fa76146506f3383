//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=catalog.go -destination=mock.gen.go -package=catalog
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gemsw/gemver/pkg/deploy"
)

// Catalog enumerates what exists under the deployment tree. Every listing
// returns a sorted, possibly empty slice; a missing parent directory is
// not an error. The existence of the three maturity roots themselves is a
// program-level precondition checked by the CLI, not here.
type Catalog interface {
	// EpicsVersions lists the framework versions deployed for a
	// maturity (directories named R*).
	EpicsVersions(m deploy.Maturity) []string
	// LatestEpicsVersion returns the newest framework version for a
	// maturity, or "" when none exist.
	LatestEpicsVersion(m deploy.Maturity) string
	// IOCs lists the IOC target names for a framework version.
	IOCs(epics string, m deploy.Maturity) []string
	// IOCVersions lists the production releases of an IOC at a site.
	IOCVersions(target, epics, site string) []string
	// SupportModules lists the support module names for a framework
	// version.
	SupportModules(epics string, m deploy.Maturity) []string
	// SupportModuleVersions lists the production releases of a support
	// module.
	SupportModuleVersions(name, epics string) []string
	// RedirectorLinks lists the names of the active-deployment links.
	RedirectorLinks() []string
}

type catalog struct {
	root string
}

var _ Catalog = (*catalog)(nil)

// New creates a Catalog over the deployment tree at root.
func New(root string) Catalog {
	return &catalog{root: root}
}

func (c *catalog) maturityDir(m deploy.Maturity) string {
	return filepath.Join(c.root, m.String())
}

func (c *catalog) EpicsVersions(m deploy.Maturity) []string {
	var versions []string
	for _, name := range listDir(c.maturityDir(m), onlyDirs) {
		if strings.HasPrefix(name, "R") {
			versions = append(versions, name)
		}
	}
	return versions
}

func (c *catalog) LatestEpicsVersion(m deploy.Maturity) string {
	versions := c.EpicsVersions(m)
	if len(versions) == 0 {
		return ""
	}
	// Listings are sorted ascending; the newest sorts last.
	return versions[len(versions)-1]
}

func (c *catalog) IOCs(epics string, m deploy.Maturity) []string {
	return listDir(filepath.Join(c.maturityDir(m), epics, "ioc"), anyEntry)
}

func (c *catalog) IOCVersions(target, epics, site string) []string {
	dir := filepath.Join(c.maturityDir(deploy.MaturityProd), epics, "ioc", target, site)
	return listDir(dir, anyEntry)
}

func (c *catalog) SupportModules(epics string, m deploy.Maturity) []string {
	return listDir(filepath.Join(c.maturityDir(m), epics, "support"), anyEntry)
}

func (c *catalog) SupportModuleVersions(name, epics string) []string {
	dir := filepath.Join(c.maturityDir(deploy.MaturityProd), epics, "support", name)
	return listDir(dir, anyEntry)
}

func (c *catalog) RedirectorLinks() []string {
	return listDir(filepath.Join(c.maturityDir(deploy.MaturityProd), "redirector"), onlyLinks)
}

type entryFilter int

const (
	anyEntry entryFilter = iota
	onlyDirs
	onlyLinks
)

func listDir(dir string, filter entryFilter) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		switch filter {
		case onlyDirs:
			if !entry.IsDir() {
				continue
			}
		case onlyLinks:
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
