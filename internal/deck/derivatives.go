package deck

import (
	"fmt"
	"strings"
)

// Derivative estimation types shared by gradients and Hessians.
const (
	DerivativeNone      = "no"
	DerivativeNumerical = "numerical"
	DerivativeAnalytic  = "analytic"
	DerivativeMixed     = "mixed"
)

// Gradient method sources.
const (
	SourceDakota = "dakota"
	SourceVendor = "vendor"
)

// Finite-difference interval types.
const (
	IntervalCentral = "central"
	IntervalForward = "forward"
)

// Hessian-only estimation type and quasi approximations.
const (
	HessianQuasi = "quasi"
	QuasiBFGS    = "bfgs"
	QuasiSR1     = "sr1"
)

// Finite-difference step scalings for Hessians.
const (
	ScalingRelative = "relative"
	ScalingAbsolute = "absolute"
	ScalingBounds   = "bounds"
)

var (
	gradientTypes = stringSet(DerivativeNone, DerivativeNumerical, DerivativeAnalytic, DerivativeMixed)
	sources       = stringSet(SourceDakota, SourceVendor)
	intervalTypes = stringSet(IntervalCentral, IntervalForward)
	hessianTypes  = stringSet(DerivativeNone, DerivativeNumerical, DerivativeAnalytic, DerivativeMixed, HessianQuasi)
	quasiApproxes = stringSet(QuasiBFGS, QuasiSR1)
	stepScalings  = stringSet(ScalingRelative, ScalingAbsolute, ScalingBounds)
)

func stringSet(vals ...string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

func checkMember(field, val string, set map[string]bool) error {
	if val == "" || set[val] {
		return nil
	}
	allowed := make([]string, 0, len(set))
	for k := range set {
		allowed = append(allowed, k)
	}
	return fmt.Errorf("%s must be one of %s, got %q", field, strings.Join(sortStrings(allowed), ", "), val)
}

func sortStrings(s []string) []string {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
	return s
}

// Gradients configures first-derivative estimation for a response set.
// A nil Gradients or Type "no" renders as no_gradients.
type Gradients struct {
	Type         string
	MethodSource string
	IntervalType string
	StepSizes    []float64
	IDNumerical  []int
	IDAnalytic   []int
}

// Validate checks all gradient option values and their combinations.
func (g *Gradients) Validate() error {
	if g == nil {
		return nil
	}
	if err := checkMember("gradient type", g.Type, gradientTypes); err != nil {
		return err
	}
	if err := checkMember("method_source", g.MethodSource, sources); err != nil {
		return err
	}
	if err := checkMember("interval_type", g.IntervalType, intervalTypes); err != nil {
		return err
	}
	if g.Type != DerivativeMixed && (len(g.IDNumerical) > 0 || len(g.IDAnalytic) > 0) {
		return fmt.Errorf("gradient id lists require mixed gradients, got %q", g.Type)
	}
	return nil
}

// Enabled reports whether any gradient estimation is configured.
func (g *Gradients) Enabled() bool {
	return g != nil && g.Type != "" && g.Type != DerivativeNone
}

func (g *Gradients) render(b *strings.Builder) {
	if !g.Enabled() {
		b.WriteString("\tno_gradients\n")
		return
	}
	fmt.Fprintf(b, "\t%s_gradients\n", g.Type)
	if len(g.IDAnalytic) > 0 {
		fmt.Fprintf(b, "\t\tid_analytic_gradients %s\n", formatInts(g.IDAnalytic))
	}
	if len(g.IDNumerical) > 0 {
		fmt.Fprintf(b, "\t\tid_numerical_gradients %s\n", formatInts(g.IDNumerical))
	}
	if g.MethodSource != "" {
		fmt.Fprintf(b, "\t\tmethod_source %s\n", g.MethodSource)
	}
	if g.IntervalType != "" {
		fmt.Fprintf(b, "\t\tinterval_type %s\n", g.IntervalType)
	}
	if len(g.StepSizes) > 0 {
		fmt.Fprintf(b, "\t\tfd_gradient_step_size %s\n", formatFloats(g.StepSizes))
	}
}

// Hessians configures second-derivative estimation for a response set.
// A nil Hessians or Type "no" renders as no_hessians.
type Hessians struct {
	Type               string
	IntervalType       string
	StepScaling        string
	QuasiApproximation string
	Damped             bool
	StepSizes          []float64
	IDNumerical        []int
	IDAnalytic         []int
	IDQuasi            []int
}

// Validate checks all Hessian option values and their combinations.
func (h *Hessians) Validate() error {
	if h == nil {
		return nil
	}
	if err := checkMember("hessian type", h.Type, hessianTypes); err != nil {
		return err
	}
	if err := checkMember("interval_type", h.IntervalType, intervalTypes); err != nil {
		return err
	}
	if err := checkMember("step_scaling", h.StepScaling, stepScalings); err != nil {
		return err
	}
	if err := checkMember("quasi approximation", h.QuasiApproximation, quasiApproxes); err != nil {
		return err
	}
	usesQuasi := h.Type == HessianQuasi || (h.Type == DerivativeMixed && len(h.IDQuasi) > 0)
	if usesQuasi && h.QuasiApproximation == "" {
		return fmt.Errorf("quasi approximation is required with %s hessians", h.Type)
	}
	if !usesQuasi && h.QuasiApproximation != "" {
		return fmt.Errorf("quasi approximation may only be used with %s hessians", HessianQuasi)
	}
	if h.Damped && h.QuasiApproximation != QuasiBFGS {
		return fmt.Errorf("damped may only be used with the %s quasi approximation", QuasiBFGS)
	}
	return nil
}

// Enabled reports whether any Hessian estimation is configured.
func (h *Hessians) Enabled() bool {
	return h != nil && h.Type != "" && h.Type != DerivativeNone
}

func (h *Hessians) render(b *strings.Builder) {
	if !h.Enabled() {
		b.WriteString("\tno_hessians\n")
		return
	}
	fmt.Fprintf(b, "\t%s_hessians\n", h.Type)
	if len(h.IDAnalytic) > 0 {
		fmt.Fprintf(b, "\t\tid_analytic_hessians %s\n", formatInts(h.IDAnalytic))
	}
	if len(h.IDNumerical) > 0 {
		fmt.Fprintf(b, "\t\tid_numerical_hessians %s\n", formatInts(h.IDNumerical))
	}
	if len(h.IDQuasi) > 0 {
		line := fmt.Sprintf("\t\tid_quasi_hessians %s %s", formatInts(h.IDQuasi), h.QuasiApproximation)
		if h.Damped {
			line += " damped"
		}
		b.WriteString(line + "\n")
	} else if h.Type == HessianQuasi {
		line := "\t\t" + h.QuasiApproximation
		if h.Damped {
			line += " damped"
		}
		b.WriteString(line + "\n")
	}
	if h.StepScaling != "" {
		fmt.Fprintf(b, "\t\t%s\n", h.StepScaling)
	}
	if h.IntervalType != "" {
		fmt.Fprintf(b, "\t\tinterval_type %s\n", h.IntervalType)
	}
	if len(h.StepSizes) > 0 {
		fmt.Fprintf(b, "\t\tfd_hessian_step_size %s\n", formatFloats(h.StepSizes))
	}
}
