package deck

import (
	"fmt"
	"strings"

	"github.com/dakotatools/dakgo/internal/names"
)

// Environment configures DAKOTA's top-level output settings.
type Environment struct {
	TabularData bool
	TabularFile string
}

// DefaultEnvironment returns an environment with tabular data enabled and
// written to the canonical file name.
func DefaultEnvironment() *Environment {
	return &Environment{TabularData: true, TabularFile: names.TabularFile}
}

func (e *Environment) render(b *strings.Builder) {
	b.WriteString("environment\n")
	if e.TabularData {
		b.WriteString("\ttabular_data\n")
		file := e.TabularFile
		if file == "" {
			file = names.TabularFile
		}
		fmt.Fprintf(b, "\t\ttabular_data_file %s\n", quote(file))
	}
}
