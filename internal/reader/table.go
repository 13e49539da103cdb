package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table is a parsed DAKOTA tabular data file: one row per completed
// evaluation, one column per variable and response.
type Table struct {
	Columns []string
	rows    [][]string
}

// Len returns the number of evaluation rows.
func (t *Table) Len() int { return len(t.rows) }

// Column returns a named column parsed as floats.
func (t *Table) Column(name string) ([]float64, error) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("tabular data has no column %q", name)
	}
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: bad value %q", name, i+1, row[idx])
		}
		out[i] = v
	}
	return out, nil
}

// ReadTabular parses a tabular data stream. The header line may carry
// DAKOTA's leading %.
func ReadTabular(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading tabular data: %w", err)
		}
		return nil, fmt.Errorf("tabular data is empty")
	}
	header := strings.TrimPrefix(strings.TrimSpace(scanner.Text()), "%")
	t := &Table{Columns: strings.Fields(header)}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("tabular data has no columns")
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(t.Columns) {
			return nil, fmt.Errorf("tabular row %d has %d fields, want %d", t.Len()+1, len(fields), len(t.Columns))
		}
		t.rows = append(t.rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tabular data: %w", err)
	}
	return t, nil
}

// LoadTabular reads and parses a tabular data file from disk.
func LoadTabular(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tabular data: %w", err)
	}
	defer f.Close()
	return ReadTabular(f)
}

// CountTabularRows counts completed evaluation rows without keeping the
// file contents, for cheap progress reporting on a growing file.
func CountTabularRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		count++
	}
	return count, scanner.Err()
}
