package reader

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix is a small label-indexed grid of floats, the shape of every
// statistics block DAKOTA prints.
type Matrix struct {
	Rows []string
	Cols []string
	Data [][]float64
}

// At returns the value at the named row and column.
func (m *Matrix) At(row, col string) (float64, bool) {
	ri, ci := -1, -1
	for i, r := range m.Rows {
		if r == row {
			ri = i
			break
		}
	}
	for i, c := range m.Cols {
		if c == col {
			ci = i
			break
		}
	}
	if ri < 0 || ci < 0 {
		return 0, false
	}
	return m.Data[ri][ci], true
}

// Row returns the named row as a column-label map.
func (m *Matrix) Row(row string) (map[string]float64, bool) {
	for i, r := range m.Rows {
		if r == row {
			out := make(map[string]float64, len(m.Cols))
			for j, c := range m.Cols {
				out[c] = m.Data[i][j]
			}
			return out, true
		}
	}
	return nil, false
}

// parseLabeledTable reads a block whose first line is a title, second line
// holds column labels, and remaining lines are "rowlabel v1 v2 ...".
func parseLabeledTable(block string) (*Matrix, error) {
	lines := nonEmptyLines(block)
	if len(lines) < 3 {
		return nil, fmt.Errorf("table block too short: %d lines", len(lines))
	}

	m := &Matrix{Cols: strings.Fields(lines[1])}
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) != len(m.Cols)+1 {
			return nil, fmt.Errorf("row %q has %d values, want %d", fields[0], len(fields)-1, len(m.Cols))
		}
		row := make([]float64, len(m.Cols))
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("row %q: bad value %q: %w", fields[0], f, err)
			}
			row[i] = v
		}
		m.Rows = append(m.Rows, fields[0])
		m.Data = append(m.Data, row)
	}
	return m, nil
}

func nonEmptyLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
