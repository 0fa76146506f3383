package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gemsw/gemver/pkg/depgraph"
)

// noDepMark flags entities without any dependencies in the inventory.
const noDepMark = "(-)"

// versionTitle heads the column carrying the entity's own release.
const versionTitle = "Latest_Version"

// inventoryPlaceholder marks empty dependency cells in the text table.
const inventoryPlaceholder = "-"

// InventoryRow is one production entity in a dependency inventory: its
// name, its own release, and its direct dependencies.
type InventoryRow struct {
	Name    string
	Version string
	Deps    depgraph.DependencyMap
}

// RenderInventory writes the per-EPICS-version dependency table: one line
// per entity release, one column per support module referenced by at
// least one of them. The EPICS version heads the leftmost column.
func RenderInventory(w io.Writer, epicsVersion string, rows []InventoryRow, csvOut bool) error {
	referenced, widths := inventoryColumns(rows)

	nameWidth := len(epicsVersion)
	versionWidth := len(versionTitle)
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
		if len(row.Version) > versionWidth {
			versionWidth = len(row.Version)
		}
	}
	nameWidth += len(noDepMark)

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].Version < rows[j].Version
	})

	if csvOut {
		return renderInventoryCSV(w, epicsVersion, rows, referenced)
	}

	header := []string{pad(epicsVersion, nameWidth), pad(versionTitle, versionWidth)}
	for _, name := range referenced {
		header = append(header, pad(name, widths[name]))
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(header, " "), " "))

	for _, row := range rows {
		name := row.Name
		if len(row.Deps) == 0 {
			name += noDepMark
		}
		line := []string{pad(name, nameWidth), pad(row.Version, versionWidth)}
		for _, dep := range referenced {
			value, ok := row.Deps[dep]
			if !ok {
				value = inventoryPlaceholder
			}
			line = append(line, pad(value, widths[dep]))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(line, " "), " "))
	}
	return nil
}

func renderInventoryCSV(w io.Writer, epicsVersion string, rows []InventoryRow, referenced []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{epicsVersion, versionTitle}, referenced...)); err != nil {
		return err
	}
	for _, row := range rows {
		name := row.Name
		if len(row.Deps) == 0 {
			name += noDepMark
		}
		record := []string{name, row.Version}
		for _, dep := range referenced {
			record = append(record, row.Deps[dep])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// inventoryColumns returns the sorted set of dependency names referenced
// by any row, with each column's display width. Modules nobody references
// get no column.
func inventoryColumns(rows []InventoryRow) ([]string, map[string]int) {
	widths := make(map[string]int)
	for _, row := range rows {
		for name, value := range row.Deps {
			w := len(name)
			if len(value) > w {
				w = len(value)
			}
			if w > widths[name] {
				widths[name] = w
			}
		}
	}
	referenced := make([]string, 0, len(widths))
	for name := range widths {
		referenced = append(referenced, name)
	}
	sort.Strings(referenced)
	return referenced, widths
}
