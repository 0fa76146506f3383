// Package crossref aggregates per-entity dependency maps into a
// comparison matrix: one row per referenced build variable, one column
// per compared entity, with per-row and per-cell agreement verdicts.
package crossref

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gemsw/gemver/pkg/depgraph"
)

// ErrMultipleBaselines is returned when more than one entry is marked as
// the comparison baseline.
var ErrMultipleBaselines = errors.New("more than one baseline entity")

// Entry is one compared entity: its display label, its dependency map,
// and whether it is the baseline every other entry is diffed against.
type Entry struct {
	Label    string
	Deps     depgraph.DependencyMap
	Baseline bool
}

// Cell is one matrix cell. Present is false when the variable is not a
// dependency of the column's entity; renderers show a placeholder then.
// Agree is meaningful per cell only when a baseline is designated; without
// one it carries the row verdict so renderers can color whole rows.
type Cell struct {
	Value   string
	Present bool
	Agree   bool
}

// Column describes one compared entity in caller-supplied order. Width is
// the display width: the longest of the entity's label and its values.
type Column struct {
	Label    string
	Baseline bool
	Width    int
}

// Row is the comparison of one build variable across all entities. Agree
// means full agreement under the matrix's baseline rule.
type Row struct {
	Variable string
	Cells    []Cell
	Agree    bool
}

// Matrix is the aggregated comparison. Rows are sorted by variable name;
// columns preserve the caller-supplied entity order. LabelWidth is the
// width of the row-label column.
type Matrix struct {
	Columns    []Column
	Rows       []Row
	LabelWidth int
	// HasBaseline records whether per-cell agreement is against a
	// designated baseline rather than plain row equality.
	HasBaseline bool
}

// Build aggregates the entries into a Matrix.
//
// Duplicate labels (comparing two releases of the same entity) receive a
// synthetic (2), (3), ... suffix in first-seen order. Without a baseline a
// row agrees when all present values are textually identical; with one,
// each cell is individually diffed against the baseline's cell, where a
// missing cell counts as disagreement only if the other side has a value.
func Build(entries []Entry) (*Matrix, error) {
	m := &Matrix{}

	seen := make(map[string]int, len(entries))
	baseline := -1
	vars := make(map[string]struct{})
	for i, entry := range entries {
		label := entry.Label
		seen[label]++
		if n := seen[label]; n > 1 {
			label = fmt.Sprintf("%s(%d)", label, n)
		}
		if entry.Baseline {
			if baseline >= 0 {
				return nil, ErrMultipleBaselines
			}
			baseline = i
		}
		m.Columns = append(m.Columns, Column{
			Label:    label,
			Baseline: entry.Baseline,
			Width:    len(label),
		})
		for name := range entry.Deps {
			vars[name] = struct{}{}
		}
	}
	m.HasBaseline = baseline >= 0

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
		if len(name) > m.LabelWidth {
			m.LabelWidth = len(name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		row := Row{Variable: name, Cells: make([]Cell, len(entries))}
		for i, entry := range entries {
			value, ok := entry.Deps[name]
			row.Cells[i] = Cell{Value: value, Present: ok}
			if ok && len(value) > m.Columns[i].Width {
				m.Columns[i].Width = len(value)
			}
		}
		if baseline >= 0 {
			base := row.Cells[baseline]
			row.Agree = true
			for i := range row.Cells {
				cell := &row.Cells[i]
				cell.Agree = cell.Present == base.Present &&
					(!cell.Present || cell.Value == base.Value)
				if !cell.Agree {
					row.Agree = false
				}
			}
		} else {
			row.Agree = presentValuesEqual(row.Cells)
			for i := range row.Cells {
				row.Cells[i].Agree = row.Agree
			}
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

// presentValuesEqual reports whether all present cell values are
// textually identical; cells with no value are ignored.
func presentValuesEqual(cells []Cell) bool {
	first := ""
	found := false
	for _, cell := range cells {
		if !cell.Present {
			continue
		}
		if !found {
			first, found = cell.Value, true
			continue
		}
		if cell.Value != first {
			return false
		}
	}
	return true
}
