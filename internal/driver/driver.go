package driver

import "context"

// Driver computes response functions for one DAKOTA evaluation. The three
// phases mirror a typical simulation workflow: stage input files, run the
// analysis, collect results.
type Driver interface {
	// WriteInputs stages any files the analysis needs, given the parsed
	// parameters for this evaluation.
	WriteInputs(ctx context.Context, p *Params) error
	// RunAnalysis executes the underlying computation.
	RunAnalysis(ctx context.Context) error
	// GetResults fills the accumulator with whatever the active set
	// requested.
	GetResults(ctx context.Context, p *Params, res *Results) error
}

// Factory constructs a Driver for one evaluation. The analysis components
// from the interface block are passed through verbatim.
type Factory func(components []string) (Driver, error)

// Execute runs the full evaluation cycle for one parameters file and
// writes the corresponding results file.
func Execute(ctx context.Context, d Driver, paramsPath, resultsPath string) error {
	p, err := LoadParams(paramsPath)
	if err != nil {
		return err
	}
	return execute(ctx, d, p, resultsPath)
}

// ExecuteFactory builds a driver from the parameters file's analysis
// components and runs the evaluation cycle with it.
func ExecuteFactory(ctx context.Context, f Factory, paramsPath, resultsPath string) error {
	p, err := LoadParams(paramsPath)
	if err != nil {
		return err
	}
	d, err := f(p.AnalysisComponents)
	if err != nil {
		return err
	}
	return execute(ctx, d, p, resultsPath)
}

func execute(ctx context.Context, d Driver, p *Params, resultsPath string) error {
	if err := d.WriteInputs(ctx, p); err != nil {
		return err
	}
	if err := d.RunAnalysis(ctx); err != nil {
		return err
	}
	res := NewResults(p)
	if err := d.GetResults(ctx, p, res); err != nil {
		return err
	}
	return res.WriteFile(resultsPath)
}
