// Package schema holds the HCL-specific structures study files decode
// into, before translation to the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// File represents the top-level structure of a study file.
type File struct {
	Studies []*Study `hcl:"study,block"`
	Body    hcl.Body `hcl:",remain"`
}

// Study represents a `study "<name>"` block.
type Study struct {
	Name        string            `hcl:"name,label"`
	DependsOn   []string          `hcl:"depends_on,optional"`
	Variables   *VariablesBlock   `hcl:"variables,block"`
	Method      *MethodBlock      `hcl:"method,block"`
	Responses   *ResponsesBlock   `hcl:"responses,block"`
	Interface   *InterfaceBlock   `hcl:"interface,block"`
	Environment *EnvironmentBlock `hcl:"environment,block"`
}

// VariablesBlock groups the typed variable blocks of a study.
type VariablesBlock struct {
	Normals    []*NormalVariable    `hcl:"normal,block"`
	Lognormals []*LognormalVariable `hcl:"lognormal,block"`
	Uniforms   []*UniformVariable   `hcl:"uniform,block"`
	Designs    []*DesignVariable    `hcl:"design,block"`
	States     []*StateVariable     `hcl:"state,block"`
}

// NormalVariable is a `normal "<descriptor>"` variable block.
type NormalVariable struct {
	Descriptor   string  `hcl:"descriptor,label"`
	Mean         float64 `hcl:"mean"`
	StdDeviation float64 `hcl:"std_deviation"`
}

// LognormalVariable is a `lognormal "<descriptor>"` variable block.
type LognormalVariable struct {
	Descriptor  string  `hcl:"descriptor,label"`
	Mean        float64 `hcl:"mean"`
	ErrorFactor float64 `hcl:"error_factor"`
}

// UniformVariable is a `uniform "<descriptor>"` variable block.
type UniformVariable struct {
	Descriptor string  `hcl:"descriptor,label"`
	LowerBound float64 `hcl:"lower_bound"`
	UpperBound float64 `hcl:"upper_bound"`
}

// DesignVariable is a `design "<descriptor>"` variable block.
type DesignVariable struct {
	Descriptor   string  `hcl:"descriptor,label"`
	InitialPoint float64 `hcl:"initial_point"`
	LowerBound   float64 `hcl:"lower_bound"`
	UpperBound   float64 `hcl:"upper_bound"`
}

// StateVariable is a `state "<descriptor>"` variable block. The value's
// HCL type must match the declared element type.
type StateVariable struct {
	Descriptor string    `hcl:"descriptor,label"`
	Type       string    `hcl:"type"`
	Value      cty.Value `hcl:"value"`
}

// MethodBlock holds exactly one method sub-block.
type MethodBlock struct {
	Sampling    *SamplingBlock    `hcl:"sampling,block"`
	QuasiNewton *QuasiNewtonBlock `hcl:"quasi_newton,block"`
}

// SamplingBlock configures the sampling method.
type SamplingBlock struct {
	SampleType string `hcl:"sample_type,optional"`
	Samples    int    `hcl:"samples"`
	Seed       int64  `hcl:"seed,optional"`
}

// QuasiNewtonBlock configures the optpp_q_newton method.
type QuasiNewtonBlock struct {
	MaxIterations        int     `hcl:"max_iterations,optional"`
	ConvergenceTolerance float64 `hcl:"convergence_tolerance,optional"`
}

// ResponsesBlock declares the response functions and derivatives.
type ResponsesBlock struct {
	Functions []string        `hcl:"functions"`
	Gradients *GradientsBlock `hcl:"gradients,block"`
	Hessians  *HessiansBlock  `hcl:"hessians,block"`
}

// GradientsBlock configures gradient estimation.
type GradientsBlock struct {
	Type         string    `hcl:"type"`
	MethodSource string    `hcl:"method_source,optional"`
	IntervalType string    `hcl:"interval_type,optional"`
	StepSizes    []float64 `hcl:"step_sizes,optional"`
	IDNumerical  []int     `hcl:"id_numerical,optional"`
	IDAnalytic   []int     `hcl:"id_analytic,optional"`
}

// HessiansBlock configures Hessian estimation.
type HessiansBlock struct {
	Type         string    `hcl:"type"`
	IntervalType string    `hcl:"interval_type,optional"`
	StepScaling  string    `hcl:"step_scaling,optional"`
	Quasi        string    `hcl:"quasi,optional"`
	Damped       bool      `hcl:"damped,optional"`
	StepSizes    []float64 `hcl:"step_sizes,optional"`
	IDNumerical  []int     `hcl:"id_numerical,optional"`
	IDAnalytic   []int     `hcl:"id_analytic,optional"`
	IDQuasi      []int     `hcl:"id_quasi,optional"`
}

// InterfaceBlock configures the analysis driver interface.
type InterfaceBlock struct {
	Driver             string   `hcl:"driver"`
	Concurrency        int      `hcl:"concurrency,optional"`
	Asynchronous       bool     `hcl:"asynchronous,optional"`
	AnalysisComponents []string `hcl:"analysis_components,optional"`
}

// EnvironmentBlock configures DAKOTA's environment section.
type EnvironmentBlock struct {
	TabularData bool   `hcl:"tabular_data,optional"`
	TabularFile string `hcl:"tabular_file,optional"`
}
