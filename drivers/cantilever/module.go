// Package cantilever implements the classic cantilever beam analysis
// driver: stress, displacement and cross-section area of a rectangular
// beam under horizontal and vertical tip loads.
package cantilever

import (
	"context"
	"fmt"
	"math"

	"github.com/dakotatools/dakgo/internal/driver"
)

// Beam length in inches.
const beamLength = 100.0

// Defaults used when a parameter is not supplied as a study variable.
const (
	defaultModulus        = 2.9e7
	defaultHorizontalLoad = 500.0
	defaultVerticalLoad   = 1000.0
)

// Module registers the cantilever driver.
type Module struct{}

func (Module) Register(r *driver.Registry) { r.Register("cantilever", newDriver) }

func newDriver(components []string) (driver.Driver, error) {
	if len(components) > 0 {
		return nil, fmt.Errorf("cantilever driver takes no analysis components, got %v", components)
	}
	return &beam{}, nil
}

// beam evaluates one parameter set. All state lives in the parsed
// parameters, so WriteInputs and RunAnalysis stage nothing.
type beam struct{}

func (b *beam) WriteInputs(ctx context.Context, p *driver.Params) error { return nil }

func (b *beam) RunAnalysis(ctx context.Context) error { return nil }

func (b *beam) GetResults(ctx context.Context, p *driver.Params, res *driver.Results) error {
	in, err := inputsFrom(p)
	if err != nil {
		return err
	}

	for _, req := range p.Requests {
		fn, ok := responses[req.Descriptor]
		if !ok {
			return fmt.Errorf("cantilever driver has no response %q", req.Descriptor)
		}
		if req.Active&driver.ValueBit != 0 {
			res.SetFunction(req.Descriptor, fn(in))
		}
		if req.Active&driver.GradientBit != 0 {
			grad, err := gradient(fn, in, p.DerivativeVariables)
			if err != nil {
				return err
			}
			res.SetGradient(req.Descriptor, grad)
		}
		if req.Active&driver.HessianBit != 0 {
			return fmt.Errorf("cantilever driver does not compute hessians")
		}
	}
	return nil
}

// inputs are the physical quantities the response functions depend on.
type inputs struct {
	width     float64
	thickness float64
	modulus   float64
	loadX     float64
	loadY     float64
}

func inputsFrom(p *driver.Params) (inputs, error) {
	in := inputs{
		modulus: defaultModulus,
		loadX:   defaultHorizontalLoad,
		loadY:   defaultVerticalLoad,
	}
	var ok bool
	if in.width, ok = p.Value("w"); !ok {
		return in, fmt.Errorf("cantilever driver requires variable %q", "w")
	}
	if in.thickness, ok = p.Value("t"); !ok {
		return in, fmt.Errorf("cantilever driver requires variable %q", "t")
	}
	if v, ok := p.Value("E"); ok {
		in.modulus = v
	}
	if v, ok := p.Value("X"); ok {
		in.loadX = v
	}
	if v, ok := p.Value("Y"); ok {
		in.loadY = v
	}
	if in.width <= 0 || in.thickness <= 0 {
		return in, fmt.Errorf("beam dimensions must be positive, got w=%g t=%g", in.width, in.thickness)
	}
	return in, nil
}

var responses = map[string]func(inputs) float64{
	"area":         area,
	"stress":       stress,
	"displacement": displacement,
}

func area(in inputs) float64 { return in.width * in.thickness }

func stress(in inputs) float64 {
	w, t := in.width, in.thickness
	return 600*in.loadY/(w*t*t) + 600*in.loadX/(w*w*t)
}

func displacement(in inputs) float64 {
	w, t := in.width, in.thickness
	term := math.Pow(in.loadY/(t*t), 2) + math.Pow(in.loadX/(w*w), 2)
	return 4 * math.Pow(beamLength, 3) / (in.modulus * w * t) * math.Sqrt(term)
}

// gradient computes central finite differences of fn with respect to the
// requested derivative variables.
func gradient(fn func(inputs) float64, in inputs, dvv []string) ([]float64, error) {
	grad := make([]float64, len(dvv))
	for i, desc := range dvv {
		field, err := fieldFor(&in, desc)
		if err != nil {
			return nil, err
		}
		base := *field
		h := 1e-6 * math.Max(math.Abs(base), 1.0)
		*field = base + h
		hi := fn(in)
		*field = base - h
		lo := fn(in)
		*field = base
		grad[i] = (hi - lo) / (2 * h)
	}
	return grad, nil
}

func fieldFor(in *inputs, descriptor string) (*float64, error) {
	switch descriptor {
	case "w":
		return &in.width, nil
	case "t":
		return &in.thickness, nil
	case "E":
		return &in.modulus, nil
	case "X":
		return &in.loadX, nil
	case "Y":
		return &in.loadY, nil
	}
	return nil, fmt.Errorf("unknown derivative variable %q", descriptor)
}
