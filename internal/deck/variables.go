package deck

import (
	"fmt"
	"regexp"
)

// Kind is the DAKOTA variable group keyword a variable renders under.
type Kind string

// Variable group keywords.
const (
	KindNormalUncertain    Kind = "normal_uncertain"
	KindLognormalUncertain Kind = "lognormal_uncertain"
	KindUniformUncertain   Kind = "uniform_uncertain"
	KindContinuousDesign   Kind = "continuous_design"
	KindContinuousState    Kind = "continuous_state"
	KindDiscreteStateRange Kind = "discrete_state_range"
	KindDiscreteStateSet   Kind = "discrete_state_set"
)

// descriptorPattern matches identifiers DAKOTA tolerates unquoted in
// parameter and tabular files.
var descriptorPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidDescriptor reports whether s is usable as a variable or response
// descriptor.
func ValidDescriptor(s string) bool {
	return descriptorPattern.MatchString(s)
}

// Variable is a single DAKOTA input variable. Implementations render as a
// column within their kind's group.
type Variable interface {
	Descriptor() string
	Kind() Kind
	// rows returns the keyword rows this variable contributes, in render
	// order, excluding the leading descriptors row.
	rows() []varRow
}

type varRow struct {
	key   string
	value string
}

// NormalUncertain is a normally distributed uncertain variable.
type NormalUncertain struct {
	descriptor   string
	Mean         float64
	StdDeviation float64
}

// NewNormalUncertain builds a normal uncertain variable.
func NewNormalUncertain(descriptor string, mean, stdDeviation float64) (*NormalUncertain, error) {
	if err := checkDescriptor(descriptor); err != nil {
		return nil, err
	}
	if stdDeviation <= 0 {
		return nil, fmt.Errorf("variable %q: std_deviation must be positive, got %v", descriptor, stdDeviation)
	}
	return &NormalUncertain{descriptor: descriptor, Mean: mean, StdDeviation: stdDeviation}, nil
}

func (v *NormalUncertain) Descriptor() string { return v.descriptor }
func (v *NormalUncertain) Kind() Kind         { return KindNormalUncertain }

func (v *NormalUncertain) rows() []varRow {
	return []varRow{
		{"means", formatFloat(v.Mean)},
		{"std_deviations", formatFloat(v.StdDeviation)},
	}
}

// LognormalUncertain is a lognormally distributed uncertain variable,
// parameterized by its mean and error factor.
type LognormalUncertain struct {
	descriptor  string
	Mean        float64
	ErrorFactor float64
}

// NewLognormalUncertain builds a lognormal uncertain variable.
func NewLognormalUncertain(descriptor string, mean, errorFactor float64) (*LognormalUncertain, error) {
	if err := checkDescriptor(descriptor); err != nil {
		return nil, err
	}
	if mean <= 0 {
		return nil, fmt.Errorf("variable %q: lognormal mean must be positive, got %v", descriptor, mean)
	}
	if errorFactor <= 1 {
		return nil, fmt.Errorf("variable %q: error_factor must exceed 1, got %v", descriptor, errorFactor)
	}
	return &LognormalUncertain{descriptor: descriptor, Mean: mean, ErrorFactor: errorFactor}, nil
}

func (v *LognormalUncertain) Descriptor() string { return v.descriptor }
func (v *LognormalUncertain) Kind() Kind         { return KindLognormalUncertain }

func (v *LognormalUncertain) rows() []varRow {
	return []varRow{
		{"means", formatFloat(v.Mean)},
		{"error_factors", formatFloat(v.ErrorFactor)},
	}
}

// UniformUncertain is a uniformly distributed uncertain variable.
type UniformUncertain struct {
	descriptor string
	LowerBound float64
	UpperBound float64
}

// NewUniformUncertain builds a uniform uncertain variable.
func NewUniformUncertain(descriptor string, lower, upper float64) (*UniformUncertain, error) {
	if err := checkDescriptor(descriptor); err != nil {
		return nil, err
	}
	if lower >= upper {
		return nil, fmt.Errorf("variable %q: lower_bound %v must be below upper_bound %v", descriptor, lower, upper)
	}
	return &UniformUncertain{descriptor: descriptor, LowerBound: lower, UpperBound: upper}, nil
}

func (v *UniformUncertain) Descriptor() string { return v.descriptor }
func (v *UniformUncertain) Kind() Kind         { return KindUniformUncertain }

func (v *UniformUncertain) rows() []varRow {
	return []varRow{
		{"lower_bounds", formatFloat(v.LowerBound)},
		{"upper_bounds", formatFloat(v.UpperBound)},
	}
}

// ContinuousDesign is a design variable for optimization methods.
type ContinuousDesign struct {
	descriptor   string
	InitialPoint float64
	LowerBound   float64
	UpperBound   float64
}

// NewContinuousDesign builds a continuous design variable.
func NewContinuousDesign(descriptor string, initial, lower, upper float64) (*ContinuousDesign, error) {
	if err := checkDescriptor(descriptor); err != nil {
		return nil, err
	}
	if lower >= upper {
		return nil, fmt.Errorf("variable %q: lower_bound %v must be below upper_bound %v", descriptor, lower, upper)
	}
	if initial < lower || initial > upper {
		return nil, fmt.Errorf("variable %q: initial_point %v outside bounds [%v, %v]", descriptor, initial, lower, upper)
	}
	return &ContinuousDesign{descriptor: descriptor, InitialPoint: initial, LowerBound: lower, UpperBound: upper}, nil
}

func (v *ContinuousDesign) Descriptor() string { return v.descriptor }
func (v *ContinuousDesign) Kind() Kind         { return KindContinuousDesign }

func (v *ContinuousDesign) rows() []varRow {
	return []varRow{
		{"initial_point", formatFloat(v.InitialPoint)},
		{"lower_bounds", formatFloat(v.LowerBound)},
		{"upper_bounds", formatFloat(v.UpperBound)},
	}
}

// ElementType is the value type a state variable holds.
type ElementType string

// State variable element types.
const (
	Real    ElementType = "real"
	Integer ElementType = "integer"
	String  ElementType = "string"
)

// State is a fixed (non-random, non-design) variable passed through to the
// analysis driver.
type State struct {
	descriptor string
	etype      ElementType
	value      any
}

// NewState builds a state variable. The value must match the declared
// element type.
func NewState(descriptor string, etype ElementType, value any) (*State, error) {
	if err := checkDescriptor(descriptor); err != nil {
		return nil, err
	}
	switch etype {
	case Real:
		if _, ok := value.(float64); !ok {
			return nil, fmt.Errorf("variable %q must be type %s", descriptor, etype)
		}
	case Integer:
		if _, ok := value.(int); !ok {
			return nil, fmt.Errorf("variable %q must be type %s", descriptor, etype)
		}
	case String:
		if _, ok := value.(string); !ok {
			return nil, fmt.Errorf("variable %q must be type %s", descriptor, etype)
		}
	default:
		return nil, fmt.Errorf("variable %q: unknown element type %q", descriptor, etype)
	}
	return &State{descriptor: descriptor, etype: etype, value: value}, nil
}

func (v *State) Descriptor() string { return v.descriptor }

// Value returns the state variable's element.
func (v *State) Value() any { return v.value }

func (v *State) Kind() Kind {
	switch v.etype {
	case Integer:
		return KindDiscreteStateRange
	case String:
		return KindDiscreteStateSet
	default:
		return KindContinuousState
	}
}

func (v *State) rows() []varRow {
	switch val := v.value.(type) {
	case float64:
		return []varRow{{"initial_state", formatFloat(val)}}
	case int:
		return []varRow{{"initial_state", fmt.Sprintf("%d", val)}}
	default:
		return []varRow{{"elements", quote(v.value.(string))}}
	}
}

func checkDescriptor(descriptor string) error {
	if !ValidDescriptor(descriptor) {
		return fmt.Errorf("invalid descriptor %q", descriptor)
	}
	return nil
}
