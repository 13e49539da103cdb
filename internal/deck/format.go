package deck

import (
	"strconv"
	"strings"
)

// formatFloat renders a float in the shortest form DAKOTA accepts.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// quote wraps a descriptor in double quotes for deck output.
func quote(s string) string {
	return `"` + s + `"`
}

// formatInts renders an id list as space-separated integers.
func formatInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

// formatFloats renders a step-size list as space-separated floats.
func formatFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

// tableRow is one keyword row in a variable group: a key followed by one
// cell per variable.
type tableRow struct {
	key   string
	cells []string
}

// writeAligned writes rows with the key column and every value column padded
// to its widest member, matching the hand-aligned look of DAKOTA decks.
func writeAligned(b *strings.Builder, indent string, rows []tableRow) {
	keyWidth := 0
	var colWidths []int
	for _, row := range rows {
		if len(row.key) > keyWidth {
			keyWidth = len(row.key)
		}
		for i, cell := range row.cells {
			if i >= len(colWidths) {
				colWidths = append(colWidths, 0)
			}
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}
	for _, row := range rows {
		line := indent + pad(row.key, keyWidth+2)
		for i, cell := range row.cells {
			line += pad(cell, colWidths[i]+3)
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
