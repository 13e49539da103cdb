package driver

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Results accumulates response data for one evaluation and writes it in
// DAKOTA's results file format. Only data the active set vector requested
// is written; requested data that was never set is an error.
type Results struct {
	requests  []ResponseRequest
	functions map[string]float64
	gradients map[string][]float64
	hessians  map[string][][]float64
}

// NewResults prepares a results accumulator for the given evaluation.
func NewResults(p *Params) *Results {
	return &Results{
		requests:  p.Requests,
		functions: make(map[string]float64),
		gradients: make(map[string][]float64),
		hessians:  make(map[string][][]float64),
	}
}

// SetFunction records a response function value.
func (r *Results) SetFunction(descriptor string, value float64) {
	r.functions[descriptor] = value
}

// SetGradient records a response gradient.
func (r *Results) SetGradient(descriptor string, gradient []float64) {
	r.gradients[descriptor] = gradient
}

// SetHessian records a response Hessian.
func (r *Results) SetHessian(descriptor string, hessian [][]float64) {
	r.hessians[descriptor] = hessian
}

// Write emits the results in request order.
func (r *Results) Write(w io.Writer) error {
	for _, req := range r.requests {
		if req.Active&ValueBit != 0 {
			v, ok := r.functions[req.Descriptor]
			if !ok {
				return fmt.Errorf("no value computed for requested function %q", req.Descriptor)
			}
			if _, err := fmt.Fprintf(w, "%24.15e %s\n", v, req.Descriptor); err != nil {
				return err
			}
		}
		if req.Active&GradientBit != 0 {
			g, ok := r.gradients[req.Descriptor]
			if !ok {
				return fmt.Errorf("no gradient computed for requested function %q", req.Descriptor)
			}
			if _, err := fmt.Fprintf(w, "[ %s ]\n", joinFloats(g)); err != nil {
				return err
			}
		}
		if req.Active&HessianBit != 0 {
			h, ok := r.hessians[req.Descriptor]
			if !ok {
				return fmt.Errorf("no hessian computed for requested function %q", req.Descriptor)
			}
			rows := make([]string, len(h))
			for i, row := range h {
				rows[i] = joinFloats(row)
			}
			if _, err := fmt.Fprintf(w, "[[ %s ]]\n", strings.Join(rows, "\n   ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFile writes the results to path, creating or truncating it.
func (r *Results) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	if err := r.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'e', 15, 64)
	}
	return strings.Join(parts, " ")
}
