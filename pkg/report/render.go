// Package report renders comparison matrices and inventory tables for the
// terminal. All widths come from the aggregated data; this package only
// pads, joins and colors.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gemsw/gemver/pkg/crossref"
)

// Placeholder marks a variable that is not a dependency of an entity.
const Placeholder = "---"

var (
	agreeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	diffStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// RenderMatrix writes the comparison matrix as an aligned text table.
// Without a baseline, rows in full agreement are colored green; with one,
// only the cells disagreeing with the baseline are highlighted.
func RenderMatrix(w io.Writer, m *crossref.Matrix, color bool) {
	header := make([]string, 0, len(m.Columns)+1)
	header = append(header, strings.Repeat(" ", m.LabelWidth))
	for _, col := range m.Columns {
		header = append(header, center(col.Label, col.Width))
	}
	fmt.Fprintln(w, strings.Join(header, "  "))

	for _, row := range m.Rows {
		cells := make([]string, 0, len(row.Cells)+1)
		cells = append(cells, pad(row.Variable, m.LabelWidth))
		for i, cell := range row.Cells {
			text := Placeholder
			if cell.Present {
				text = cell.Value
			}
			text = pad(text, m.Columns[i].Width)
			if color && m.HasBaseline && !cell.Agree {
				text = diffStyle.Render(text)
			}
			cells = append(cells, text)
		}
		line := strings.Join(cells, "  ")
		if color && !m.HasBaseline && row.Agree {
			line = agreeStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

// RenderMatrixCSV writes the comparison matrix in CSV form, one column
// per entity. Absent dependencies become empty fields.
func RenderMatrixCSV(w io.Writer, m *crossref.Matrix) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(m.Columns)+1)
	header = append(header, "")
	for _, col := range m.Columns {
		header = append(header, col.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range m.Rows {
		record := make([]string, 0, len(row.Cells)+1)
		record = append(record, row.Variable)
		for _, cell := range row.Cells {
			record = append(record, cell.Value)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return pad(strings.Repeat(" ", left)+s, width)
}
