// Translation from HCL schema structs into deck-level domain objects. All
// option validation lives in the deck package; this layer only moves data
// and converts cty values.
package hclconf

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/dakotatools/dakgo/internal/config"
	"github.com/dakotatools/dakgo/internal/deck"
	"github.com/dakotatools/dakgo/internal/schema"
)

func translateStudy(s *schema.Study) (*config.Study, error) {
	d := deck.New(s.Name)

	if s.Variables == nil {
		return nil, fmt.Errorf("missing variables block")
	}
	if err := translateVariables(d, s.Variables); err != nil {
		return nil, err
	}

	if s.Method == nil {
		return nil, fmt.Errorf("missing method block")
	}
	m, err := translateMethod(s.Method)
	if err != nil {
		return nil, err
	}
	d.SetMethod(m)

	if s.Responses == nil {
		return nil, fmt.Errorf("missing responses block")
	}
	r, err := translateResponses(s.Responses)
	if err != nil {
		return nil, err
	}
	d.SetResponses(r)

	if s.Interface == nil {
		return nil, fmt.Errorf("missing interface block")
	}
	iface, err := translateInterface(s.Interface)
	if err != nil {
		return nil, err
	}
	d.SetInterface(iface)

	if s.Environment != nil {
		d.SetEnvironment(&deck.Environment{
			TabularData: s.Environment.TabularData,
			TabularFile: s.Environment.TabularFile,
		})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &config.Study{Name: s.Name, Deck: d, DependsOn: s.DependsOn}, nil
}

func translateVariables(d *deck.Deck, vars *schema.VariablesBlock) error {
	add := func(v deck.Variable, err error) error {
		if err != nil {
			return err
		}
		return d.AddVariable(v)
	}
	for _, n := range vars.Normals {
		if err := add(deck.NewNormalUncertain(n.Descriptor, n.Mean, n.StdDeviation)); err != nil {
			return err
		}
	}
	for _, ln := range vars.Lognormals {
		if err := add(deck.NewLognormalUncertain(ln.Descriptor, ln.Mean, ln.ErrorFactor)); err != nil {
			return err
		}
	}
	for _, u := range vars.Uniforms {
		if err := add(deck.NewUniformUncertain(u.Descriptor, u.LowerBound, u.UpperBound)); err != nil {
			return err
		}
	}
	for _, dv := range vars.Designs {
		if err := add(deck.NewContinuousDesign(dv.Descriptor, dv.InitialPoint, dv.LowerBound, dv.UpperBound)); err != nil {
			return err
		}
	}
	for _, st := range vars.States {
		value, etype, err := stateValue(st)
		if err != nil {
			return err
		}
		if err := add(deck.NewState(st.Descriptor, etype, value)); err != nil {
			return err
		}
	}
	return nil
}

// stateValue converts the raw cty value of a state block according to its
// declared element type.
func stateValue(st *schema.StateVariable) (any, deck.ElementType, error) {
	switch deck.ElementType(st.Type) {
	case deck.Real:
		if st.Value.Type() != cty.Number {
			return nil, "", fmt.Errorf("state %q: value is not a number", st.Descriptor)
		}
		f, _ := st.Value.AsBigFloat().Float64()
		return f, deck.Real, nil
	case deck.Integer:
		if st.Value.Type() != cty.Number {
			return nil, "", fmt.Errorf("state %q: value is not a number", st.Descriptor)
		}
		f, acc := st.Value.AsBigFloat().Int64()
		if acc != 0 {
			return nil, "", fmt.Errorf("state %q: value is not an integer", st.Descriptor)
		}
		return int(f), deck.Integer, nil
	case deck.String:
		if st.Value.Type() != cty.String {
			return nil, "", fmt.Errorf("state %q: value is not a string", st.Descriptor)
		}
		return st.Value.AsString(), deck.String, nil
	default:
		return nil, "", fmt.Errorf("state %q: unknown type %q", st.Descriptor, st.Type)
	}
}

func translateMethod(m *schema.MethodBlock) (deck.Method, error) {
	switch {
	case m.Sampling != nil && m.QuasiNewton != nil:
		return nil, fmt.Errorf("method block declares more than one method")
	case m.Sampling != nil:
		sampleType := m.Sampling.SampleType
		if sampleType == "" {
			sampleType = deck.SampleRandom
		}
		return deck.NewSampling(sampleType, m.Sampling.Samples, m.Sampling.Seed)
	case m.QuasiNewton != nil:
		maxIter := m.QuasiNewton.MaxIterations
		if maxIter == 0 {
			maxIter = 100
		}
		tol := m.QuasiNewton.ConvergenceTolerance
		if tol == 0 {
			tol = 1e-4
		}
		return deck.NewQuasiNewton(maxIter, tol)
	default:
		return nil, fmt.Errorf("method block declares no method")
	}
}

func translateResponses(r *schema.ResponsesBlock) (*deck.Responses, error) {
	resp, err := deck.NewResponses(r.Functions)
	if err != nil {
		return nil, err
	}
	if r.Gradients != nil {
		resp.Gradients = &deck.Gradients{
			Type:         r.Gradients.Type,
			MethodSource: r.Gradients.MethodSource,
			IntervalType: r.Gradients.IntervalType,
			StepSizes:    r.Gradients.StepSizes,
			IDNumerical:  r.Gradients.IDNumerical,
			IDAnalytic:   r.Gradients.IDAnalytic,
		}
	}
	if r.Hessians != nil {
		resp.Hessians = &deck.Hessians{
			Type:               r.Hessians.Type,
			IntervalType:       r.Hessians.IntervalType,
			StepScaling:        r.Hessians.StepScaling,
			QuasiApproximation: r.Hessians.Quasi,
			Damped:             r.Hessians.Damped,
			StepSizes:          r.Hessians.StepSizes,
			IDNumerical:        r.Hessians.IDNumerical,
			IDAnalytic:         r.Hessians.IDAnalytic,
			IDQuasi:            r.Hessians.IDQuasi,
		}
	}
	return resp, nil
}

func translateInterface(i *schema.InterfaceBlock) (*deck.Interface, error) {
	iface, err := deck.NewInterface(i.Driver)
	if err != nil {
		return nil, err
	}
	if i.Concurrency > 0 {
		iface.Concurrency = i.Concurrency
	}
	iface.Asynchronous = i.Asynchronous
	iface.AnalysisComponents = i.AnalysisComponents
	return iface, nil
}
