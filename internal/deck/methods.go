package deck

import (
	"fmt"
	"strings"
)

// Method is a DAKOTA iteration method. Exactly one method drives a deck.
type Method interface {
	// ID is the id_method string written to the deck.
	ID() string
	// RequiresGradients reports whether the method needs gradient responses.
	RequiresGradients() bool
	render(b *strings.Builder)
}

// Sample types for the sampling method.
const (
	SampleRandom = "random"
	SampleLHS    = "lhs"
)

// Sampling is the DAKOTA sampling method: plain Monte Carlo or Latin
// hypercube sampling over the uncertain variables.
type Sampling struct {
	SampleType string
	Samples    int
	Seed       int64
}

// NewSampling builds a sampling method.
func NewSampling(sampleType string, samples int, seed int64) (*Sampling, error) {
	switch sampleType {
	case SampleRandom, SampleLHS:
	default:
		return nil, fmt.Errorf("sample_type must be %q or %q, got %q", SampleRandom, SampleLHS, sampleType)
	}
	if samples <= 0 {
		return nil, fmt.Errorf("samples must be positive, got %d", samples)
	}
	return &Sampling{SampleType: sampleType, Samples: samples, Seed: seed}, nil
}

func (m *Sampling) ID() string { return "sampling" }

func (m *Sampling) RequiresGradients() bool { return false }

func (m *Sampling) render(b *strings.Builder) {
	b.WriteString("\tsampling\n")
	fmt.Fprintf(b, "\t\tsample_type %s\n", m.SampleType)
	fmt.Fprintf(b, "\t\tsamples = %d\n", m.Samples)
	if m.Seed != 0 {
		fmt.Fprintf(b, "\t\tseed = %d\n", m.Seed)
	}
}

// QuasiNewton is the optpp_q_newton gradient-based local optimization
// method over the continuous design variables.
type QuasiNewton struct {
	MaxIterations        int
	ConvergenceTolerance float64
}

// NewQuasiNewton builds a quasi-Newton optimization method.
func NewQuasiNewton(maxIterations int, convergenceTolerance float64) (*QuasiNewton, error) {
	if maxIterations <= 0 {
		return nil, fmt.Errorf("max_iterations must be positive, got %d", maxIterations)
	}
	if convergenceTolerance <= 0 {
		return nil, fmt.Errorf("convergence_tolerance must be positive, got %v", convergenceTolerance)
	}
	return &QuasiNewton{MaxIterations: maxIterations, ConvergenceTolerance: convergenceTolerance}, nil
}

func (m *QuasiNewton) ID() string { return "optpp_q_newton" }

func (m *QuasiNewton) RequiresGradients() bool { return true }

func (m *QuasiNewton) render(b *strings.Builder) {
	b.WriteString("\toptpp_q_newton\n")
	fmt.Fprintf(b, "\t\tmax_iterations = %d\n", m.MaxIterations)
	fmt.Fprintf(b, "\t\tconvergence_tolerance = %s\n", formatFloat(m.ConvergenceTolerance))
}
