// Package gemver wires the deployment-tree inventory together: resolving
// requested entities, extracting their dependency maps and aggregating
// them into reports.
package gemver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/gemsw/gemver/pkg/catalog"
	"github.com/gemsw/gemver/pkg/config"
	"github.com/gemsw/gemver/pkg/crossref"
	"github.com/gemsw/gemver/pkg/depgraph"
	"github.com/gemsw/gemver/pkg/deploy"
	"github.com/gemsw/gemver/pkg/logging"
	"github.com/gemsw/gemver/pkg/release"
	"github.com/gemsw/gemver/pkg/report"
)

// App orchestrates one inventory run over a deployment tree.
type App struct {
	config   *config.Config
	catalog  catalog.Catalog
	resolver *deploy.Resolver
	graph    depgraph.Graph
}

// New creates an App over the tree named by the configuration.
func New(cfg *config.Config) *App {
	return &App{
		config:   cfg,
		catalog:  catalog.New(cfg.Root),
		resolver: deploy.NewResolver(cfg.Root),
		graph:    depgraph.New(cfg.Root, release.NewExtractor()),
	}
}

// CheckTree verifies the fatal precondition shared by every report: the
// prod, work and redirector directories must exist.
func (a *App) CheckTree() error {
	for _, dir := range []string{
		filepath.Join(a.config.Root, "prod"),
		filepath.Join(a.config.Root, "work"),
		a.resolver.RedirectorDir(),
	} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("redirector, prod and/or work directories do not exist under %s", a.config.Root)
		}
	}
	return nil
}

// EpicsVersion returns the framework version reports should assume: the
// configured one, or the newest deployed in prod.
func (a *App) EpicsVersion() string {
	if a.config.EpicsVersion != "" {
		return a.config.EpicsVersion
	}
	return a.catalog.LatestEpicsVersion(deploy.MaturityProd)
}

// Catalog exposes the tree listings for the convenience queries.
func (a *App) Catalog() catalog.Catalog {
	return a.catalog
}

// Compare resolves every requested entity specification and aggregates
// their dependency maps into a comparison matrix. Resolution happens as
// an up-front pass: a single bad specification fails the whole report
// instead of producing a misleading partial matrix.
func (a *App) Compare(ctx context.Context, specs []string) (*crossref.Matrix, error) {
	epics := a.EpicsVersion()
	site := a.config.Site

	entities := make([]deploy.Entity, 0, len(specs))
	for _, raw := range specs {
		entity, err := a.resolver.ResolveSpec(deploy.ParseSpec(raw), epics, site)
		if err != nil {
			return nil, err
		}
		logging.C(ctx).Debug("resolved entity",
			zap.String("name", entity.Name),
			zap.String("path", entity.Path),
		)
		entities = append(entities, entity)
	}

	entries := make([]crossref.Entry, 0, len(entities))
	for _, entity := range entities {
		deps, err := a.graph.DependenciesOf(entity)
		if err != nil {
			return nil, err
		}
		entries = append(entries, crossref.Entry{
			Label:    entity.Name,
			Deps:     deps,
			Baseline: entity.Baseline,
		})
	}
	return crossref.Build(entries)
}

// EntityDependencies resolves one specification and returns the entity,
// its direct dependency map and, when deep is set, each dependency's own
// direct dependencies (one further hop, never more).
func (a *App) EntityDependencies(
	ctx context.Context,
	raw string,
	deep bool,
) (deploy.Entity, depgraph.DependencyMap, map[string]depgraph.DependencyMap, error) {
	entity, err := a.resolver.ResolveSpec(deploy.ParseSpec(raw), a.EpicsVersion(), a.config.Site)
	if err != nil {
		return deploy.Entity{}, nil, nil, err
	}
	deps, err := a.graph.DependenciesOf(entity)
	if err != nil {
		return deploy.Entity{}, nil, nil, err
	}
	var hops map[string]depgraph.DependencyMap
	if deep {
		if hops, err = a.graph.SecondHop(entity); err != nil {
			return deploy.Entity{}, nil, nil, err
		}
	}
	return entity, deps, hops, nil
}

// ActiveEntry is one redirector link with the entity it points at.
type ActiveEntry struct {
	Entity deploy.Entity
	Link   string
}

// Active summarizes every link in the redirector directory. Links whose
// target cannot be decoded appear with unknown maturity instead of
// failing the listing, matching the permissive handling of ill-formed
// deployments elsewhere.
func (a *App) Active(ctx context.Context, excludes []string) ([]ActiveEntry, error) {
	excludes = append(excludes, a.config.Exclude...)
	var entries []ActiveEntry
	for _, name := range a.catalog.RedirectorLinks() {
		if excluded(name, excludes) {
			continue
		}
		link, err := a.resolver.LinkTarget(name)
		if err != nil {
			return nil, err
		}
		entity, err := a.resolver.ResolveCurrent(name)
		if err != nil {
			logging.C(ctx).Warn("undecodable redirector link",
				zap.String("name", name), zap.Error(err))
			entity = deploy.Entity{Name: name, Maturity: deploy.MaturityUnknown}
		}
		entries = append(entries, ActiveEntry{Entity: entity, Link: link})
	}
	return entries, nil
}

// InventoryRows collects the production dependency inventory for one
// area and framework version, filtered by the match and exclude lists.
func (a *App) InventoryRows(
	ctx context.Context,
	area deploy.Area,
	epics string,
	names, excludes []string,
) ([]report.InventoryRow, error) {
	excludes = append(excludes, a.config.Exclude...)
	rows := make([]report.InventoryRow, 0)
	for _, entity := range a.prodEntities(area, epics) {
		if !matched(entity.Name, names) || excluded(entity.Name, excludes) {
			continue
		}
		deps, err := a.graph.DependenciesOf(entity)
		if err != nil {
			return nil, err
		}
		rows = append(rows, report.InventoryRow{
			Name:    entity.Name,
			Version: entity.Release,
			Deps:    deps,
		})
	}
	return rows, nil
}

// WhatDepends returns, for each production entity that depends on at
// least one of the named build variables, the sorted names it depends on.
func (a *App) WhatDepends(ctx context.Context, epics string, names []string) (map[string][]string, error) {
	found := make(map[string]map[string]struct{})
	for _, area := range []deploy.Area{deploy.AreaSupport, deploy.AreaIOC} {
		for _, entity := range a.prodEntities(area, epics) {
			deps, err := a.graph.DependenciesOf(entity)
			if err != nil {
				return nil, err
			}
			for variable := range deps {
				if !contains(names, variable) {
					continue
				}
				if found[entity.TargetName] == nil {
					found[entity.TargetName] = make(map[string]struct{})
				}
				found[entity.TargetName][variable] = struct{}{}
			}
		}
	}

	result := make(map[string][]string, len(found))
	for name, vars := range found {
		sorted := make([]string, 0, len(vars))
		for v := range vars {
			sorted = append(sorted, v)
		}
		sort.Strings(sorted)
		result[name] = sorted
	}
	return result, nil
}

// prodEntities enumerates every production release of the area via the
// catalog. IOCs are enumerated per site.
func (a *App) prodEntities(area deploy.Area, epics string) []deploy.Entity {
	var entities []deploy.Entity
	switch area {
	case deploy.AreaIOC:
		for _, target := range a.catalog.IOCs(epics, deploy.MaturityProd) {
			for _, site := range deploy.Sites {
				for _, version := range a.catalog.IOCVersions(target, epics, site) {
					entities = append(entities, deploy.Entity{
						Name:         deploy.IOCName(target, site),
						Area:         deploy.AreaIOC,
						TargetName:   target,
						Site:         site,
						Maturity:     deploy.MaturityProd,
						EpicsVersion: epics,
						Release:      version,
					})
				}
			}
		}
	case deploy.AreaSupport:
		for _, name := range a.catalog.SupportModules(epics, deploy.MaturityProd) {
			for _, version := range a.catalog.SupportModuleVersions(name, epics) {
				entities = append(entities, deploy.Entity{
					Name:         name,
					Area:         deploy.AreaSupport,
					TargetName:   name,
					Maturity:     deploy.MaturityProd,
					EpicsVersion: epics,
					Release:      version,
				})
			}
		}
	}
	return entities
}

// matched reports whether name contains any of the match strings. An
// empty list matches everything.
func matched(name string, matches []string) bool {
	if len(matches) == 0 {
		return true
	}
	for _, s := range matches {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// excluded reports whether name contains any of the exclude strings.
func excluded(name string, excludes []string) bool {
	for _, s := range excludes {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
