// Package formatter renders and re-aligns markdown tables by display width.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const minColumnWidth = 3

// Table is a markdown table: one header row and any number of body rows.
// Cells are written as given; escape pipes before adding them.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable creates a table with the given header.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// Append adds a body row.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Lines renders the table with every column padded to its widest cell.
// East Asian wide characters count as two columns.
func (t *Table) Lines() []string {
	cols := len(t.Header)
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}

	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	measure(t.Header)

	for _, row := range t.Rows {
		measure(row)
	}

	for i := range widths {
		widths[i] = max(widths[i], minColumnWidth)
	}

	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, renderRow(t.Header, widths))

	sep := make([]string, cols)
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	lines = append(lines, renderRow(sep, widths))

	for _, row := range t.Rows {
		lines = append(lines, renderRow(row, widths))
	}

	return lines
}

// String renders the table as one block without a trailing newline.
func (t *Table) String() string {
	return strings.Join(t.Lines(), "\n")
}

func renderRow(cells []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		sb.WriteString(" ")
		sb.WriteString(cell)

		if pad := w - runewidth.StringWidth(cell); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

// splitRow splits a markdown table row into trimmed cells. Escaped pipes (\|)
// stay inside their cell.
func splitRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")

	if strings.HasSuffix(row, "|") && !strings.HasSuffix(row, `\|`) {
		row = strings.TrimSuffix(row, "|")
	}

	var (
		cells []string
		cur   strings.Builder
	)

	for i := 0; i < len(row); i++ {
		switch {
		case row[i] == '\\' && i+1 < len(row) && row[i+1] == '|':
			cur.WriteString(`\|`)
			i++
		case row[i] == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(row[i])
		}
	}

	return append(cells, strings.TrimSpace(cur.String()))
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}

	for _, cell := range cells {
		trimmed := strings.Trim(cell, "-: ")
		if trimmed != "" || !strings.Contains(cell, "-") {
			return false
		}
	}

	return true
}
