// Package names holds the canonical DAKOTA file and directory names used
// throughout a study workspace.
package names

import "fmt"

// Canonical file names inside a study working directory.
const (
	DeckFile       = "dak.in"
	OutputFile     = "dak.out"
	TabularFile    = "dak.tab"
	ParametersFile = "params.in"
	ResultsFile    = "results.out"
	DriverScript   = "driver.sh"
	RunManifest    = "study.yml"
	SummaryFile    = "summary.yml"
)

// Default directory names.
const (
	StudyDir = "dakota_study"
	EvalDir  = "evals"
)

// RestartFile returns the name of the n-th restart file.
func RestartFile(n int) string {
	return fmt.Sprintf("Restart%d.rst", n)
}

// NumberedDeck returns the name of the n-th input deck for multi-run studies.
func NumberedDeck(n int) string {
	return fmt.Sprintf("dak_%d.in", n)
}

// NumberedOutput returns the name of the n-th output file for multi-run studies.
func NumberedOutput(n int) string {
	return fmt.Sprintf("dak_%d.out", n)
}
