package deck

import (
	"fmt"
	"strings"

	"github.com/dakotatools/dakgo/internal/names"
)

// Interface declares how DAKOTA evaluates the response functions: the
// analysis driver to fork and the evaluation concurrency settings.
type Interface struct {
	// Driver is the registered analysis driver name the shim script
	// dispatches to.
	Driver string
	// DriverCommand overrides the rendered analysis_drivers string. Empty
	// means the default shim script.
	DriverCommand      string
	Concurrency        int
	Asynchronous       bool
	AnalysisComponents []string
}

// NewInterface builds an interface block for a named driver.
func NewInterface(driver string) (*Interface, error) {
	if driver == "" {
		return nil, fmt.Errorf("interface requires a driver name")
	}
	return &Interface{Driver: driver, Concurrency: 1}, nil
}

// Validate checks concurrency settings.
func (i *Interface) Validate() error {
	if i.Concurrency < 1 {
		return fmt.Errorf("evaluation concurrency must be at least 1, got %d", i.Concurrency)
	}
	if i.Concurrency > 1 && !i.Asynchronous {
		return fmt.Errorf("evaluation concurrency %d requires asynchronous evaluation", i.Concurrency)
	}
	return nil
}

func (i *Interface) render(b *strings.Builder, id string) {
	b.WriteString("interface\n")
	fmt.Fprintf(b, "\tid_interface = %s\n", quote(id))
	command := i.DriverCommand
	if command == "" {
		command = "./" + names.DriverScript
	}
	fmt.Fprintf(b, "\tanalysis_drivers %s\n", quote(command))
	b.WriteString("\t\tfork\n")
	if i.Asynchronous {
		fmt.Fprintf(b, "\t\tasynchronous evaluation_concurrency %d\n", i.Concurrency)
	}
	fmt.Fprintf(b, "\t\tparameters_file %s\n", quote(names.ParametersFile))
	fmt.Fprintf(b, "\t\tresults_file %s\n", quote(names.ResultsFile))
	fmt.Fprintf(b, "\t\twork_directory named %s directory_tag directory_save\n",
		quote(names.EvalDir+"/eval"))
	if i.DriverCommand == "" {
		// The driver forks from inside the tagged eval directory; the shim
		// lives at the study root and must be linked in for ./driver.sh to
		// resolve.
		fmt.Fprintf(b, "\t\tlink_files %s\n", quote(names.DriverScript))
	}
	if len(i.AnalysisComponents) > 0 {
		quoted := make([]string, len(i.AnalysisComponents))
		for n, c := range i.AnalysisComponents {
			quoted[n] = quote(c)
		}
		fmt.Fprintf(b, "\tanalysis_components %s\n", strings.Join(quoted, " "))
	}
}
